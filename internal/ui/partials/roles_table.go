// roles_table.go — таблица ролей.
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

// RolesTableData — данные таблицы ролей.
type RolesTableData struct {
	Page    listing.Page[model.Role]
	PageURL func(page int) string
	CanEdit   bool
	CanDelete bool
}

// RolesTable — контейнер #roles-table.
func RolesTable(d RolesTableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := i18n.Lang(ctx)
		if err := writef(w, `<div id="roles-table"><table class="list"><thead><tr><th>ID</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			E(i18n.T(ctx, "roles.name")),
			E(i18n.T(ctx, "roles.key")),
			E(i18n.T(ctx, "roles.description")),
			E(i18n.T(ctx, "common.actions")),
		); err != nil {
			return err
		}

		if d.Page.Empty() {
			if err := writef(w, `<tr><td colspan="5" class="empty">%s</td></tr>`, E(i18n.T(ctx, "common.empty"))); err != nil {
				return err
			}
		}
		for _, r := range d.Page.Items {
			id := strconv.FormatInt(r.ID, 10)
			if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
				id, E(r.Name.In(lang)), E(r.Key), E(r.Description.In(lang))); err != nil {
				return err
			}
			if d.CanEdit {
				if err := writef(w, `<button class="btn btn-secondary btn-sm" hx-get="/roles/%s/edit" hx-target="#modal-root">%s</button> `,
					id, E(i18n.T(ctx, "common.edit"))); err != nil {
					return err
				}
			}
			if d.CanDelete {
				if err := writef(w, `<button class="btn btn-danger btn-sm" hx-delete="/roles/%s" hx-target="#roles-table" hx-swap="outerHTML" hx-confirm="%s">%s</button>`,
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
			Target:     "#roles-table",
		})); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}
