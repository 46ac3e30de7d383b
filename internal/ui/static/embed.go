// Пакет static — встроенные статические ресурсы панели.
// CSS и JS встраиваются в бинарник через //go:embed и раздаются
// по путям /static/css/app.css, /static/js/app.js.
package static

import (
	"embed"
	"net/http"
)

//go:embed css/*.css js/*.js
var content embed.FS

// Handler раздаёт встроенные ассеты под префиксом /static/.
func Handler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(content)))
}
