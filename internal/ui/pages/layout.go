// Пакет pages — полные страницы панели.
// Каждая страница — templ-компонент: каркас с навигацией и
// содержимое экрана. Фрагменты для HTMX живут в пакете partials.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// LayoutData — данные каркаса страницы.
type LayoutData struct {
	Title    string // ключ перевода заголовка
	Active   string // путь активного пункта меню
	UserName string
	RoleName string
	// Can — проверка права на пункт меню.
	Can func(action string) bool
}

type navItem struct {
	path   string
	label  string // ключ перевода
	action string // требуемый токен права, "" — без гейта
}

var navItems = []navItem{
	{path: "/dashboard", label: "nav.dashboard"},
	{path: "/users", label: "nav.users", action: "view-user"},
	{path: "/roles", label: "nav.roles", action: "view-role"},
	{path: "/face-devices", label: "nav.devices", action: "view-face-device"},
}

// Layout оборачивает содержимое экрана в каркас с навигацией.
func Layout(d LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.Lang(ctx)
		if err := write(w, `<!DOCTYPE html><html lang="`+partials.E(lang)+`"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+partials.E(i18n.T(ctx, d.Title))+` — `+partials.E(i18n.T(ctx, "app.title"))+`</title>`+
			`<link rel="stylesheet" href="/static/css/app.css">`+
			`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`+
			`<script src="/static/js/app.js" defer></script>`+
			`</head><body><div class="layout">`); err != nil {
			return err
		}

		// Боковое меню: пункты без права не отрисовываются вовсе.
		if err := write(w, `<aside class="sidebar"><div class="brand">`+partials.E(i18n.T(ctx, "app.title"))+`</div><nav>`); err != nil {
			return err
		}
		for _, item := range navItems {
			if item.action != "" && d.Can != nil && !d.Can(item.action) {
				continue
			}
			cls := ""
			if item.path == d.Active {
				cls = ` class="active"`
			}
			if err := write(w, `<a href="`+item.path+`"`+cls+`>`+partials.E(i18n.T(ctx, item.label))+`</a>`); err != nil {
				return err
			}
		}
		if err := write(w, `</nav></aside>`); err != nil {
			return err
		}

		if err := write(w, `<main class="content"><div class="topbar"><h1>`+partials.E(i18n.T(ctx, d.Title))+`</h1>`+
			`<div class="user">`); err != nil {
			return err
		}
		if err := langSwitcher(w, lang); err != nil {
			return err
		}
		// Logout меняет состояние сессии, поэтому уходит POST'ом,
		// а не ссылкой: маршрут /logout принимает только POST.
		if err := write(w, ` <span>`+partials.E(d.UserName)+`</span> `+
			`<form method="post" action="/logout" class="inline">`+
			`<button type="submit" class="btn-link">`+partials.E(i18n.T(ctx, "nav.logout"))+`</button>`+
			`</form></div></div>`); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		return write(w, `<div id="modal-root"></div></main></div></body></html>`)
	})
}

func langSwitcher(w io.Writer, current string) error {
	for _, lang := range i18n.Languages {
		if lang == current {
			if err := write(w, `<strong>`+lang+`</strong> `); err != nil {
				return err
			}
			continue
		}
		if err := write(w, `<a href="/language?lang=`+lang+`">`+lang+`</a> `); err != nil {
			return err
		}
	}
	return nil
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
