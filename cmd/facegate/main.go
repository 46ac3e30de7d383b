// Точка входа панели управления терминалами распознавания лиц.
// Загружает конфигурацию, настраивает логирование и переводы,
// создаёт клиента backend API, сервисный слой и обработчики экранов,
// запускает HTTP-сервер с graceful shutdown.
package main

import (
	"log/slog"
	"os"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/config"
	"github.com/davrbek/facegate/internal/server"
	"github.com/davrbek/facegate/internal/service"
	"github.com/davrbek/facegate/internal/ui/handlers"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/middleware"
)

func main() {
	// 1. Загрузка конфигурации из .env и переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("Панель запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.String("backend", cfg.BackendURL),
	)

	// 3. Загрузка каталогов переводов (вшиты в бинарник)
	if _, err := i18n.Init(logger); err != nil {
		logger.Error("Ошибка загрузки переводов", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Клиент backend API
	client := backend.New(cfg.BackendURL, cfg.BackendTimeout, logger)

	// 5. Сервисный слой
	principals := service.NewPrincipalService(client, cfg.PrincipalCacheSize, cfg.PrincipalCacheTTL, logger)
	users := service.NewUserService(client, logger)
	roles := service.NewRoleService(client, logger)
	devices := service.NewDeviceService(client, logger)
	assignments := service.NewAssignmentService(client, logger)

	// 6. Обработчики экранов
	h := server.Handlers{
		Auth:        handlers.NewAuthHandler(principals, cfg.SecureCookies, logger),
		Dashboard:   handlers.NewDashboardHandler(logger),
		Users:       handlers.NewUsersHandler(users, roles, logger),
		Roles:       handlers.NewRolesHandler(roles, logger),
		Devices:     handlers.NewDevicesHandler(devices, logger),
		Assignments: handlers.NewAssignmentsHandler(assignments, users, devices, logger),
	}

	// 7. HTTP-сервер с graceful shutdown
	auth := middleware.NewAuth(principals, logger)
	srv := server.New(cfg, logger, auth, h)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Панель остановлена")
}
