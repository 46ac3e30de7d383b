// Пакет middleware — HTTP middleware панели.
// auth.go — проверка cookie-сессии и прав доступа к странице.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/perm"
	"github.com/davrbek/facegate/internal/service"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/session"
)

type contextKey string

const (
	contextKeyPrincipal   contextKey = "principal"
	contextKeyCredentials contextKey = "credentials"
)

// Auth — middleware аутентификации и авторизации панели.
// Нет или просрочена сессия — redirect на /login.
// Сессия есть, но нет права на страницу — redirect на /dashboard.
type Auth struct {
	principals *service.PrincipalService
	logger     *slog.Logger
}

// NewAuth создаёт middleware аутентификации.
func NewAuth(principals *service.PrincipalService, logger *slog.Logger) *Auth {
	return &Auth{
		principals: principals,
		logger:     logger.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware проверяет сессию и право на запрошенную страницу.
func (a *Auth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromRequest(r)
			if !sess.Valid(time.Now()) {
				session.Clear(w)
				redirect(w, r, "/login")
				return
			}

			cred := backend.Credentials{Token: sess.Token, Locale: i18n.Lang(r.Context())}
			principal, err := a.principals.Current(r.Context(), cred)
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) {
					session.Clear(w)
					redirect(w, r, "/login")
					return
				}
				a.logger.Error("Загрузка principal не удалась", slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
				return
			}

			if action := perm.PageAction(r.URL.Path); action != "" && !principal.Evaluator.Has(action) {
				a.logger.Warn("Доступ к странице запрещён",
					slog.Int64("user_id", principal.User.ID),
					slog.String("path", r.URL.Path),
					slog.String("action", action),
				)
				redirect(w, r, "/dashboard")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPrincipal, principal)
			ctx = context.WithValue(ctx, contextKeyCredentials, cred)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// redirect уважает HTMX: для частичных запросов вместо 302
// ставится HX-Redirect, чтобы браузер сделал полный переход.
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, to, http.StatusFound)
}

// WithPrincipal кладёт principal и учётные данные в контекст —
// то же, что делает Auth.Middleware для прошедшего проверку запроса.
func WithPrincipal(ctx context.Context, p *service.Principal, cred backend.Credentials) context.Context {
	ctx = context.WithValue(ctx, contextKeyPrincipal, p)
	return context.WithValue(ctx, contextKeyCredentials, cred)
}

// PrincipalFrom извлекает principal из контекста (nil вне Auth).
func PrincipalFrom(ctx context.Context) *service.Principal {
	p, _ := ctx.Value(contextKeyPrincipal).(*service.Principal)
	return p
}

// CredentialsFrom извлекает учётные данные запроса из контекста.
func CredentialsFrom(ctx context.Context) backend.Credentials {
	cred, _ := ctx.Value(contextKeyCredentials).(backend.Credentials)
	return cred
}
