// Пакет config — загрузка и валидация конфигурации панели
// из переменных окружения. Локальный .env подхватывается через
// godotenv, если он есть; переменные окружения имеют приоритет.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации панели.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- Backend ---

	// Базовый URL backend API
	BackendURL string
	// Таймаут одного запроса к backend
	BackendTimeout time.Duration

	// --- Кэш principal ---

	// Максимум записей в кэше /auth/me
	PrincipalCacheSize int
	// Время жизни записи кэша /auth/me
	PrincipalCacheTTL time.Duration

	// --- Cookies ---

	// Ставить ли флаг Secure на сессионные cookies
	SecureCookies bool

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из .env (если есть) и переменных
// окружения, валидирует обязательные поля и возвращает Config.
func Load() (*Config, error) {
	// Отсутствие .env — не ошибка: в контейнере конфигурация
	// приходит переменными окружения.
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// --- Сервер ---

	// FA_PORT — порт HTTP-сервера (по умолчанию 8080)
	cfg.Port, err = getEnvInt("FA_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("FA_PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("FA_PORT: значение %d вне допустимого диапазона 1-65535", cfg.Port)
	}

	// FA_LOG_LEVEL — уровень логирования (по умолчанию info)
	cfg.LogLevel, err = parseLogLevel(getEnvDefault("FA_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("FA_LOG_LEVEL: %w", err)
	}

	// FA_LOG_FORMAT — формат логов (по умолчанию json)
	cfg.LogFormat = getEnvDefault("FA_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("FA_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	// --- Backend ---

	// FA_BACKEND_URL — обязательный
	cfg.BackendURL, err = getEnvRequired("FA_BACKEND_URL")
	if err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	if u, err := url.Parse(cfg.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("FA_BACKEND_URL: не абсолютный URL: %q", cfg.BackendURL)
	}

	// FA_BACKEND_TIMEOUT — таймаут запроса к backend (по умолчанию 15s)
	cfg.BackendTimeout, err = getEnvDuration("FA_BACKEND_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("FA_BACKEND_TIMEOUT: %w", err)
	}

	// --- Кэш principal ---

	// FA_PRINCIPAL_CACHE_SIZE — размер кэша /auth/me (по умолчанию 256)
	cfg.PrincipalCacheSize, err = getEnvInt("FA_PRINCIPAL_CACHE_SIZE", 256)
	if err != nil {
		return nil, fmt.Errorf("FA_PRINCIPAL_CACHE_SIZE: %w", err)
	}
	if cfg.PrincipalCacheSize < 1 {
		return nil, fmt.Errorf("FA_PRINCIPAL_CACHE_SIZE: значение %d должно быть положительным", cfg.PrincipalCacheSize)
	}

	// FA_PRINCIPAL_CACHE_TTL — время жизни записи (по умолчанию 30s)
	cfg.PrincipalCacheTTL, err = getEnvDuration("FA_PRINCIPAL_CACHE_TTL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("FA_PRINCIPAL_CACHE_TTL: %w", err)
	}

	// --- Cookies ---

	// FA_SECURE_COOKIES — флаг Secure на cookies (по умолчанию false:
	// локальная разработка идёт по http)
	cfg.SecureCookies, err = getEnvBool("FA_SECURE_COOKIES", false)
	if err != nil {
		return nil, fmt.Errorf("FA_SECURE_COOKIES: %w", err)
	}

	// --- Graceful shutdown ---

	// FA_SHUTDOWN_TIMEOUT — таймаут graceful shutdown (по умолчанию 5s)
	cfg.ShutdownTimeout, err = getEnvDuration("FA_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("FA_SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvBool возвращает булево значение переменной окружения или значение по умолчанию.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("некорректное булево значение: %q", val)
	}
	return b, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}
