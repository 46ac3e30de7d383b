// pagination.go — пагинация списков.
// Кнопки шлют HTMX-запрос с номером UI-страницы (нумерация с 0),
// перевод в нумерацию backend'а происходит глубже, в listing.Query.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/ui/i18n"
)

// PaginationData — входные данные пагинации.
type PaginationData struct {
	Index      int // текущая UI-страница, с 0
	TotalPages int
	Total      int
	// PageURL строит URL выборки заданной страницы
	// с сохранением применённых фильтров.
	PageURL func(page int) string
	// Target — css-селектор контейнера таблицы для hx-target.
	Target string
}

// Pagination — блок пагинации под таблицей.
func Pagination(d PaginationData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="pagination">`); err != nil {
			return err
		}

		prevAttrs := ` disabled`
		if d.Index > 0 {
			prevAttrs = ` hx-get="` + E(d.PageURL(d.Index-1)) + `" hx-target="` + E(d.Target) + `" hx-swap="outerHTML"`
		}
		if err := writef(w, `<button class="btn btn-secondary btn-sm"%s>%s</button>`,
			prevAttrs, E(i18n.T(ctx, "pagination.prev"))); err != nil {
			return err
		}

		nextAttrs := ` disabled`
		if d.Index+1 < d.TotalPages {
			nextAttrs = ` hx-get="` + E(d.PageURL(d.Index+1)) + `" hx-target="` + E(d.Target) + `" hx-swap="outerHTML"`
		}
		if err := writef(w, `<button class="btn btn-secondary btn-sm"%s>%s</button>`,
			nextAttrs, E(i18n.T(ctx, "pagination.next"))); err != nil {
			return err
		}

		pages := d.TotalPages
		if pages < 1 {
			pages = 1
		}
		if err := writef(w, `<span>%s</span>`,
			E(i18n.Tf(ctx, "pagination.page_of", d.Index+1, pages))); err != nil {
			return err
		}
		if err := writef(w, `<span class="info">%s</span>`,
			E(i18n.Tf(ctx, "pagination.total", d.Total))); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}
