// auth.go — вход и выход.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/service"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/pages"
	"github.com/davrbek/facegate/internal/ui/session"
)

// AuthHandler — страница входа и logout.
type AuthHandler struct {
	principals    *service.PrincipalService
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthHandler создаёт AuthHandler.
// secureCookies включает флаг Secure на cookie сессии (prod за TLS).
func NewAuthHandler(principals *service.PrincipalService, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		principals:    principals,
		secureCookies: secureCookies,
		logger:        logger.With(slog.String("component", "ui.auth")),
	}
}

// LoginPage обрабатывает GET /login.
// Живая сессия — сразу на /dashboard.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.FromRequest(r).Valid(time.Now()) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	render(w, r, h.logger, pages.Login(""))
}

// Login обрабатывает POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, r, h.logger, pages.Login(i18n.T(r.Context(), "errors.generic")))
		return
	}
	login := r.PostFormValue("login")
	password := r.PostFormValue("password")

	res, err := h.principals.Login(r.Context(), i18n.Lang(r.Context()), login, password)
	if err != nil {
		apiErr := backend.AsAPIError(err)
		msg := i18n.T(r.Context(), "login.failed")
		if apiErr.Kind == backend.KindUnavailable {
			msg = i18n.T(r.Context(), "errors.unavailable")
		}
		h.logger.Warn("Неудачный вход",
			slog.String("login", login),
			slog.String("kind", string(apiErr.Kind)),
		)
		render(w, r, h.logger, pages.Login(msg))
		return
	}

	expiresAt, err := time.Parse(time.RFC3339, res.ExpiresAt)
	if err != nil {
		// Backend вернул срок в неожиданном формате — токен сам
		// знает свой exp, cookie со сроком не пишем.
		expiresAt = time.Now().Add(12 * time.Hour)
		h.logger.Warn("Неразборчивый token_expiration", slog.String("raw", res.ExpiresAt))
	}
	session.Write(w, res.Token, expiresAt, h.secureCookies)
	h.logger.Info("Пользователь вошёл", slog.String("login", login))
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout обрабатывает POST /logout: отзыв токена, очистка cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	if sess.Token != "" {
		h.principals.Logout(r.Context(), backend.Credentials{
			Token:  sess.Token,
			Locale: i18n.Lang(r.Context()),
		})
	}
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
