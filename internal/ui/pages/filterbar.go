// filterbar.go — панель фильтров списка.
// Поля — черновик: изменение значения ничего не запрашивает,
// выборка уходит только по кнопке «Применить» (и всегда со
// сбросом на первую страницу). «Сбросить» возвращает значения
// по умолчанию и тоже перечитывает список.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// perPageChoices — варианты размера страницы; последний — «все».
var perPageChoices = []int{10, 25, 50, listing.PerPageAll}

// filterBar оборачивает поля в форму с кнопками Apply/Reset.
// tableURL — endpoint табличного фрагмента, target — его контейнер.
func filterBar(tableURL, target string, perPage int, fields ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<div class="card"><form class="filter-bar" hx-get="`+partials.E(tableURL)+
			`" hx-target="`+partials.E(target)+`" hx-swap="outerHTML">`); err != nil {
			return err
		}
		for _, f := range fields {
			if err := f.Render(ctx, w); err != nil {
				return err
			}
		}

		perPageOpts := make([]partials.Option, 0, len(perPageChoices))
		for _, n := range perPageChoices {
			label := strconv.Itoa(n)
			value := strconv.Itoa(n)
			if n == listing.PerPageAll {
				label = i18n.T(ctx, "common.all")
				value = "all"
			}
			perPageOpts = append(perPageOpts, partials.Option{
				Value: value, Label: label, Selected: n == perPage,
			})
		}
		if err := partials.Select(i18n.T(ctx, "common.per_page"), "limit", perPageOpts, nil).Render(ctx, w); err != nil {
			return err
		}

		return write(w, `<button type="submit" class="btn">`+partials.E(i18n.T(ctx, "common.apply"))+`</button>`+
			`<button type="button" class="btn btn-secondary" hx-get="`+partials.E(tableURL)+`?reset=1" hx-target="`+
			partials.E(target)+`" hx-swap="outerHTML">`+partials.E(i18n.T(ctx, "common.reset"))+`</button></form></div>`)
	})
}

// searchField — текстовое поле поиска с текущим черновым значением.
func searchField(ctx context.Context, value string) templ.Component {
	return partials.Input(partials.Field{
		Label: i18n.T(ctx, "common.search"), Name: "search", Value: value,
	})
}

// statusOptions — select статуса с sentinel-значением «все».
func statusOptions(ctx context.Context, current, activeValue, inactiveValue string) []partials.Option {
	return []partials.Option{
		{Value: listing.FilterAll, Label: i18n.T(ctx, "common.all"), Selected: current == listing.FilterAll || current == ""},
		{Value: activeValue, Label: i18n.T(ctx, "common.active"), Selected: current == activeValue},
		{Value: inactiveValue, Label: i18n.T(ctx, "common.inactive"), Selected: current == inactiveValue},
	}
}
