// Пакет session — cookie-сессия админ-панели.
// Панель не хранит серверных сессий: токен backend'а и срок его
// действия лежат в cookie браузера. Проверка подлинности токена —
// забота backend'а; здесь только срок.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieToken      = "token"
	cookieExpiration = "token_expiration"
)

// Session — токен текущего пользователя и срок его действия.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Valid сообщает, жив ли токен на момент now.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// FromRequest читает сессию из cookie запроса.
// Срок берётся из cookie token_expiration; если её нет или она
// нечитаема — из claim'а exp самого JWT (без проверки подписи,
// подпись проверяет backend).
func FromRequest(r *http.Request) Session {
	c, err := r.Cookie(cookieToken)
	if err != nil || c.Value == "" {
		return Session{}
	}
	s := Session{Token: c.Value}

	if ec, err := r.Cookie(cookieExpiration); err == nil {
		if t, err := time.Parse(time.RFC3339, ec.Value); err == nil {
			s.ExpiresAt = t
			return s
		}
	}
	s.ExpiresAt = tokenExpiry(c.Value)
	return s
}

// tokenExpiry извлекает exp из JWT без валидации подписи.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Write выставляет cookie сессии после успешного входа.
func Write(w http.ResponseWriter, token string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieToken,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     cookieExpiration,
		Value:    expiresAt.UTC().Format(time.RFC3339),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear стирает cookie сессии (logout или просроченный токен).
func Clear(w http.ResponseWriter) {
	for _, name := range []string{cookieToken, cookieExpiration} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
