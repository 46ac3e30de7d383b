// devices_table.go — таблица терминалов.
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

// DevicesTableData — данные таблицы терминалов.
type DevicesTableData struct {
	Page    listing.Page[model.FaceDevice]
	PageURL func(page int) string
	CanEdit   bool
	CanDelete bool
	CanAssign bool
}

// DevicesTable — контейнер #devices-table.
func DevicesTable(d DevicesTableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div id="devices-table"><table class="list"><thead><tr><th>ID</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			E(i18n.T(ctx, "devices.name")),
			E(i18n.T(ctx, "devices.ip")),
			E(i18n.T(ctx, "devices.type")),
			E(i18n.T(ctx, "common.status")),
			E(i18n.T(ctx, "devices.last_checked")),
			E(i18n.T(ctx, "common.actions")),
		); err != nil {
			return err
		}

		if d.Page.Empty() {
			if err := writef(w, `<tr><td colspan="7" class="empty">%s</td></tr>`, E(i18n.T(ctx, "common.empty"))); err != nil {
				return err
			}
		}
		for _, dev := range d.Page.Items {
			id := strconv.FormatInt(dev.ID, 10)
			typeLabel := i18n.T(ctx, "devices.type.enter")
			if dev.Type == model.DeviceTypeExit {
				typeLabel = i18n.T(ctx, "devices.type.exit")
			}
			lastChecked := ""
			if dev.LastCheckedAt != nil {
				lastChecked = *dev.LastCheckedAt
			}
			if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s:%d</td><td>%s</td><td>`,
				id, E(dev.Name), E(dev.IP), dev.Port, E(typeLabel)); err != nil {
				return err
			}
			if err := render(ctx, w, StatusBadge(dev.Status == model.DeviceStatusActive)); err != nil {
				return err
			}
			if err := writef(w, `</td><td>%s</td><td>`, E(lastChecked)); err != nil {
				return err
			}
			if d.CanAssign {
				if err := writef(w, `<a class="btn btn-secondary btn-sm" href="/face-devices/%s/users">%s</a> `,
					id, E(i18n.T(ctx, "devices.users"))); err != nil {
					return err
				}
			}
			if d.CanEdit {
				if err := writef(w, `<button class="btn btn-secondary btn-sm" hx-get="/face-devices/%s/edit" hx-target="#modal-root">%s</button> `,
					id, E(i18n.T(ctx, "common.edit"))); err != nil {
					return err
				}
			}
			if d.CanDelete {
				if err := writef(w, `<button class="btn btn-danger btn-sm" hx-delete="/face-devices/%s" hx-target="#devices-table" hx-swap="outerHTML" hx-confirm="%s">%s</button>`,
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
			Target:     "#devices-table",
		})); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}
