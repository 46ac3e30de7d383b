// language.go — переключение языка панели.
package handlers

import (
	"net/http"

	"github.com/davrbek/facegate/internal/ui/i18n"
)

// SwitchLanguage обрабатывает GET /language?lang=xx:
// пишет cookie и возвращает на предыдущую страницу.
func SwitchLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if i18n.Supported(lang) {
		http.SetCookie(w, &http.Cookie{
			Name:     i18n.LangCookieName,
			Value:    lang,
			Path:     "/",
			MaxAge:   365 * 24 * 3600,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	back := r.Referer()
	if back == "" {
		back = "/dashboard"
	}
	http.Redirect(w, r, back, http.StatusFound)
}
