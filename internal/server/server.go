// Пакет server — HTTP-сервер панели с graceful shutdown.
// Без TLS — HTTP внутри кластера, TLS termination на reverse proxy.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davrbek/facegate/internal/config"
	"github.com/davrbek/facegate/internal/ui/handlers"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/middleware"
	"github.com/davrbek/facegate/internal/ui/static"
)

// Handlers — обработчики экранов панели, собранные в main.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Dashboard   *handlers.DashboardHandler
	Users       *handlers.UsersHandler
	Roles       *handlers.RolesHandler
	Devices     *handlers.DevicesHandler
	Assignments *handlers.AssignmentsHandler
}

// Server — HTTP-сервер панели.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с настроенными routes и middleware.
func New(cfg *config.Config, logger *slog.Logger, auth *middleware.Auth, h Handlers) *Server {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам)
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger(logger))

	// Технические endpoints — без сессии и локали
	router.Get("/healthz", handlers.Healthz)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Handle("/static/*", static.Handler())

	// Публичные страницы: вход и смена языка
	router.Group(func(r chi.Router) {
		r.Use(i18n.Middleware())

		r.Get("/login", h.Auth.LoginPage)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Post("/language", handlers.SwitchLanguage)
	})

	// Экраны панели: требуют валидной сессии и прав
	router.Group(func(r chi.Router) {
		r.Use(i18n.Middleware())
		r.Use(auth.Middleware())

		r.Get("/", redirectTo("/dashboard"))
		r.Get("/dashboard", h.Dashboard.Page)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.Users.Page)
			r.Get("/table", h.Users.Table)
			r.Get("/new", h.Users.New)
			r.Post("/", h.Users.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", h.Users.Edit)
				r.Post("/", h.Users.Update)
				r.Delete("/", h.Users.Delete)

				r.Get("/devices", h.Assignments.DevicesInUser)
				r.Get("/devices/out", h.Assignments.DevicesOutUser)
				r.Post("/devices/assign", h.Assignments.AssignDevices)
				r.Post("/devices/remove", h.Assignments.RemoveDevices)
			})
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", h.Roles.Page)
			r.Get("/table", h.Roles.Table)
			r.Get("/new", h.Roles.New)
			r.Post("/", h.Roles.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", h.Roles.Edit)
				r.Post("/", h.Roles.Update)
				r.Delete("/", h.Roles.Delete)
			})
		})

		r.Route("/face-devices", func(r chi.Router) {
			r.Get("/", h.Devices.Page)
			r.Get("/table", h.Devices.Table)
			r.Get("/new", h.Devices.New)
			r.Post("/", h.Devices.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/edit", h.Devices.Edit)
				r.Post("/", h.Devices.Update)
				r.Delete("/", h.Devices.Delete)

				r.Get("/users", h.Assignments.UsersInDevice)
				r.Get("/users/out", h.Assignments.UsersOutDevice)
				r.Post("/users/assign", h.Assignments.AssignUsers)
				r.Post("/users/remove", h.Assignments.RemoveUsers)
			})
		})
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// Handler возвращает собранный router (для тестов маршрутизации).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// redirectTo возвращает handler постоянного перенаправления.
func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
