// login.go — страница входа.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// Login — форма входа. errMsg — локализованное сообщение
// о неудачной попытке, пустая строка — без alert'а.
func Login(errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.Lang(ctx)
		if err := write(w, `<!DOCTYPE html><html lang="`+partials.E(lang)+`"><head><meta charset="utf-8">`+
			`<title>`+partials.E(i18n.T(ctx, "login.title"))+` — `+partials.E(i18n.T(ctx, "app.title"))+`</title>`+
			`<link rel="stylesheet" href="/static/css/app.css">`+
			`</head><body><div class="login-page"><div class="card login-card">`+
			`<h2>`+partials.E(i18n.T(ctx, "app.title"))+`</h2>`); err != nil {
			return err
		}
		if errMsg != "" {
			if err := partials.ErrorAlert(errMsg).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := write(w, `<form method="post" action="/login">`); err != nil {
			return err
		}
		if err := partials.Input(partials.Field{
			Label: i18n.T(ctx, "login.login"), Name: "login",
		}).Render(ctx, w); err != nil {
			return err
		}
		if err := partials.Input(partials.Field{
			Label: i18n.T(ctx, "login.password"), Name: "password", Type: "password",
		}).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `<button type="submit" class="btn" style="width:100%">`+
			partials.E(i18n.T(ctx, "login.submit"))+`</button></form></div></div></body></html>`)
	})
}
