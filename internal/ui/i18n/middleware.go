// middleware.go — определение языка пользователя.
// Приоритет: cookie "lang" → Accept-Language → default "en".
package i18n

import "net/http"

// LangCookieName — cookie с явно выбранным языком.
const LangCookieName = "lang"

// Middleware кладёт язык запроса в контекст.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), Detect(r))))
		})
	}
}

// Detect определяет язык запроса.
func Detect(r *http.Request) string {
	if cookie, err := r.Cookie(LangCookieName); err == nil && Supported(cookie.Value) {
		return cookie.Value
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return Match(accept)
	}
	return "en"
}
