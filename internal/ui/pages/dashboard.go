// dashboard.go — главная страница.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// Dashboard — приветствие и роль текущего пользователя.
func Dashboard(userName, roleName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<div class="card"><p>`+
			partials.E(i18n.Tf(ctx, "dashboard.welcome", userName))+`</p>`); err != nil {
			return err
		}
		if roleName != "" {
			if err := write(w, `<p>`+partials.E(i18n.Tf(ctx, "dashboard.role", roleName))+`</p>`); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}
