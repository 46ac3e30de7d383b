// users_table.go — таблица пользователей.
// Отдаётся и в составе страницы, и отдельно на HTMX-запросы
// пагинации, фильтров и после мутаций.
package partials

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/ui/i18n"
)

// UsersTableData — данные таблицы пользователей.
type UsersTableData struct {
	Page    listing.Page[model.User]
	PageURL func(page int) string
	CanEdit   bool
	CanDelete bool
	CanAssign bool
}

// UsersTable — контейнер #users-table: таблица плюс пагинация.
func UsersTable(d UsersTableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div id="users-table">`); err != nil {
			return err
		}
		if err := writef(w, `<table class="list"><thead><tr><th>ID</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			E(i18n.T(ctx, "users.full_name")),
			E(i18n.T(ctx, "users.phone")),
			E(i18n.T(ctx, "users.login")),
			E(i18n.T(ctx, "users.role")),
			E(i18n.T(ctx, "common.status")),
			E(i18n.T(ctx, "common.actions")),
		); err != nil {
			return err
		}

		if d.Page.Empty() {
			if err := writef(w, `<tr><td colspan="7" class="empty">%s</td></tr>`, E(i18n.T(ctx, "common.empty"))); err != nil {
				return err
			}
		}
		for _, u := range d.Page.Items {
			id := strconv.FormatInt(u.ID, 10)
			roleName := roleOf(&u, i18n.Lang(ctx))
			if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				id, E(u.FullName()), E(u.Phone), E(u.Login), E(roleName)); err != nil {
				return err
			}
			if err := render(ctx, w, StatusBadge(u.Status)); err != nil {
				return err
			}
			if err := writef(w, `</td><td>`); err != nil {
				return err
			}
			if d.CanAssign {
				if err := writef(w, `<a class="btn btn-secondary btn-sm" href="/users/%s/devices">%s</a> `,
					id, E(i18n.T(ctx, "users.devices"))); err != nil {
					return err
				}
			}
			if d.CanEdit {
				if err := writef(w, `<button class="btn btn-secondary btn-sm" hx-get="/users/%s/edit" hx-target="#modal-root">%s</button> `,
					id, E(i18n.T(ctx, "common.edit"))); err != nil {
					return err
				}
			}
			if d.CanDelete {
				if err := writef(w, `<button class="btn btn-danger btn-sm" hx-delete="/users/%s" hx-target="#users-table" hx-swap="outerHTML" hx-confirm="%s">%s</button>`,
					id, E(i18n.T(ctx, "common.confirm_delete")), E(i18n.T(ctx, "common.delete"))); err != nil {
					return err
				}
			}
			if err := writef(w, `</td></tr>`); err != nil {
				return err
			}
		}

		if err := writef(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := render(ctx, w, Pagination(PaginationData{
			Index:      d.Page.Index,
			TotalPages: d.Page.TotalPages,
			Total:      d.Page.Total,
			PageURL:    d.PageURL,
			Target:     "#users-table",
		})); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}

// roleOf — отображаемая роль пользователя из includes.
func roleOf(u *model.User, lang string) string {
	if u.Includes == nil {
		return ""
	}
	if u.Includes.Role != nil {
		return u.Includes.Role.Name.In(lang)
	}
	if len(u.Includes.Roles) > 0 {
		return u.Includes.Roles[0].Name.In(lang)
	}
	return ""
}
