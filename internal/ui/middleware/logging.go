// logging.go — структурное логирование HTTP-запросов.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestLogger логирует каждый запрос с request id.
// Уровень зависит от статуса: 5xx — Error, 4xx — Warn, остальное — Info.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With(slog.String("component", "http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}
			switch {
			case ww.Status() >= 500:
				log.Error("HTTP запрос", attrs...)
			case ww.Status() >= 400:
				log.Warn("HTTP запрос", attrs...)
			default:
				log.Info("HTTP запрос", attrs...)
			}
		})
	}
}
