// assign_table.go — таблица экранов назначений.
// Один компонент обслуживает четыре экрана: пользователи на
// терминале / вне терминала и терминалы пользователя / без него.
// Разные стороны отличаются только колонками, endpoint'ом действия
// и наличием статусов синхронизации.
package partials

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/ui/i18n"
)

// AssignRow — строка таблицы назначений. Сервер всегда отрисовывает
// строки невыбранными: выделение живёт только в DOM и умирает вместе
// с перерисовкой таблицы.
type AssignRow struct {
	ID    int64
	Cells []string
	Sync  *model.SyncChannels // nil для "out"-списков
}

// AssignTableData — данные таблицы назначений.
type AssignTableData struct {
	ContainerID string // id контейнера, он же hx-target
	Headers     []string
	ShowSync    bool
	Rows        []AssignRow

	Index      int
	TotalPages int
	Total      int
	PageURL    func(page int) string

	// ActionURL — endpoint одиночного и массового действия.
	ActionURL string
	// ActionKey / BulkKey — ключи переводов кнопок.
	ActionKey string
	BulkKey   string
	// HeaderState — состояние чекбокса в шапке
	// (unchecked | indeterminate | checked).
	HeaderState string
	Danger      bool
	CanAct      bool
	// Hidden — скрытые поля формы: текущая страница, размер
	// и фильтры, чтобы действие знало контекст списка.
	Hidden map[string]string
}

// AssignTable — контейнер таблицы назначений с выбором строк.
func AssignTable(d AssignTableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		target := "#" + d.ContainerID
		btnClass := "btn btn-sm"
		if d.Danger {
			btnClass = "btn btn-danger btn-sm"
		}

		if err := writef(w, `<form id="%s" hx-post="%s" hx-target="%s" hx-swap="outerHTML">`,
			E(d.ContainerID), E(d.ActionURL), E(target)); err != nil {
			return err
		}
		for name, value := range d.Hidden {
			if err := writef(w, `<input type="hidden" name="%s" value="%s">`, E(name), E(value)); err != nil {
				return err
			}
		}

		if d.CanAct {
			// data-count-label несёт сырой шаблон перевода: счётчик
			// в скобках обновляет app.js по мере выбора строк.
			if err := writef(w, `<div class="card"><button type="submit" class="%s" data-count-label="%s">%s</button></div>`,
				btnClass, E(i18n.T(ctx, d.BulkKey)), E(i18n.Tf(ctx, d.BulkKey, 0))); err != nil {
				return err
			}
		}

		if err := writef(w, `<table class="list"><thead><tr>`); err != nil {
			return err
		}
		if d.CanAct {
			headerChecked := ""
			if d.HeaderState == "checked" {
				headerChecked = " checked"
			}
			if err := writef(w, `<th><input type="checkbox" data-select-all data-header-state="%s"%s></th>`,
				E(d.HeaderState), headerChecked); err != nil {
				return err
			}
		}
		for _, h := range d.Headers {
			if err := writef(w, `<th>%s</th>`, E(h)); err != nil {
				return err
			}
		}
		if d.ShowSync {
			if err := writef(w, `<th>%s</th><th>%s</th><th>%s</th>`,
				E(i18n.T(ctx, "assign.sync.user")),
				E(i18n.T(ctx, "assign.sync.image")),
				E(i18n.T(ctx, "assign.sync.card"))); err != nil {
				return err
			}
		}
		if d.CanAct {
			if err := writef(w, `<th>%s</th>`, E(i18n.T(ctx, "common.actions"))); err != nil {
				return err
			}
		}
		if err := writef(w, `</tr></thead><tbody>`); err != nil {
			return err
		}

		if len(d.Rows) == 0 {
			cols := len(d.Headers) + 2
			if d.ShowSync {
				cols += 3
			}
			if err := writef(w, `<tr><td colspan="%d" class="empty">%s</td></tr>`,
				cols, E(i18n.T(ctx, "common.empty"))); err != nil {
				return err
			}
		}

		for _, row := range d.Rows {
			id := strconv.FormatInt(row.ID, 10)
			if err := writef(w, `<tr>`); err != nil {
				return err
			}
			if d.CanAct {
				if err := writef(w, `<td><input type="checkbox" class="row-select" name="ids" value="%s"></td>`,
					id); err != nil {
					return err
				}
			}
			for _, cell := range row.Cells {
				if err := writef(w, `<td>%s</td>`, E(cell)); err != nil {
					return err
				}
			}
			if d.ShowSync && row.Sync != nil {
				for _, status := range []string{row.Sync.UserStatus, row.Sync.ImageStatus, row.Sync.CardStatus} {
					if err := writef(w, `<td>`); err != nil {
						return err
					}
					if err := render(ctx, w, SyncBadge(status)); err != nil {
						return err
					}
					if err := writef(w, `</td>`); err != nil {
						return err
					}
				}
			}
			if d.CanAct {
				if err := writef(w, `<td><button type="button" class="%s" hx-post="%s" hx-vals='{"ids":"%s"}' hx-include="this" hx-target="%s" hx-swap="outerHTML">%s</button></td>`,
					btnClass, E(d.ActionURL), id, E(target), E(i18n.T(ctx, d.ActionKey))); err != nil {
					return err
				}
			}
			if err := writef(w, `</tr>`); err != nil {
				return err
			}
		}

		if err := writef(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := render(ctx, w, Pagination(PaginationData{
			Index:      d.Index,
			TotalPages: d.TotalPages,
			Total:      d.Total,
			PageURL:    d.PageURL,
			Target:     target,
		})); err != nil {
			return err
		}
		return writef(w, `</form>`)
	})
}
