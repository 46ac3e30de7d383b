package config

import (
	"log/slog"
	"testing"
	"time"
)

// setEnvs устанавливает переменные окружения на время теста.
func setEnvs(t *testing.T, envs map[string]string) {
	t.Helper()
	for k, v := range envs {
		t.Setenv(k, v)
	}
}

// minimalEnvs возвращает минимальный набор обязательных переменных.
func minimalEnvs() map[string]string {
	return map[string]string{
		"FA_BACKEND_URL": "http://backend.local:4000/api/v1",
	}
}

func TestLoad_MinimalConfig(t *testing.T) {
	setEnvs(t, minimalEnvs())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	// Проверяем значения по умолчанию
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, ожидается 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, ожидается Info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, ожидается json", cfg.LogFormat)
	}
	if cfg.BackendURL != "http://backend.local:4000/api/v1" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.BackendTimeout != 15*time.Second {
		t.Errorf("BackendTimeout = %v, ожидается 15s", cfg.BackendTimeout)
	}
	if cfg.PrincipalCacheSize != 256 {
		t.Errorf("PrincipalCacheSize = %d, ожидается 256", cfg.PrincipalCacheSize)
	}
	if cfg.PrincipalCacheTTL != 30*time.Second {
		t.Errorf("PrincipalCacheTTL = %v, ожидается 30s", cfg.PrincipalCacheTTL)
	}
	if cfg.SecureCookies {
		t.Error("SecureCookies = true, ожидается false")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 5s", cfg.ShutdownTimeout)
	}
}

func TestLoad_TrailingSlashTrimmed(t *testing.T) {
	envs := minimalEnvs()
	envs["FA_BACKEND_URL"] = "http://backend.local:4000/api/v1/"
	setEnvs(t, envs)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}
	if cfg.BackendURL != "http://backend.local:4000/api/v1" {
		t.Errorf("BackendURL = %q, trailing slash должен убираться", cfg.BackendURL)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	envs := minimalEnvs()
	envs["FA_PORT"] = "9090"
	envs["FA_LOG_LEVEL"] = "debug"
	envs["FA_LOG_FORMAT"] = "text"
	envs["FA_BACKEND_TIMEOUT"] = "30s"
	envs["FA_PRINCIPAL_CACHE_SIZE"] = "64"
	envs["FA_PRINCIPAL_CACHE_TTL"] = "1m"
	envs["FA_SECURE_COOKIES"] = "true"
	envs["FA_SHUTDOWN_TIMEOUT"] = "10s"
	setEnvs(t, envs)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, ожидается 9090", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, ожидается Debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, ожидается text", cfg.LogFormat)
	}
	if cfg.BackendTimeout != 30*time.Second {
		t.Errorf("BackendTimeout = %v, ожидается 30s", cfg.BackendTimeout)
	}
	if cfg.PrincipalCacheSize != 64 {
		t.Errorf("PrincipalCacheSize = %d, ожидается 64", cfg.PrincipalCacheSize)
	}
	if cfg.PrincipalCacheTTL != time.Minute {
		t.Errorf("PrincipalCacheTTL = %v, ожидается 1m", cfg.PrincipalCacheTTL)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies = false, ожидается true")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_MissingBackendURL(t *testing.T) {
	t.Setenv("FA_BACKEND_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() без FA_BACKEND_URL должен вернуть ошибку")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"порт не число", "FA_PORT", "abc"},
		{"порт вне диапазона", "FA_PORT", "70000"},
		{"недопустимый уровень", "FA_LOG_LEVEL", "verbose"},
		{"недопустимый формат", "FA_LOG_FORMAT", "xml"},
		{"кривой URL", "FA_BACKEND_URL", "not-a-url"},
		{"кривая длительность", "FA_BACKEND_TIMEOUT", "15 seconds"},
		{"неположительный размер кэша", "FA_PRINCIPAL_CACHE_SIZE", "0"},
		{"кривое булево", "FA_SECURE_COOKIES", "da"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setEnvs(t, minimalEnvs())
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() с %s=%q должен вернуть ошибку", tc.key, tc.value)
			}
		})
	}
}
