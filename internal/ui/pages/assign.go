// assign.go — экраны назначений пользователь ↔ терминал.
// Каждый экран показывает один из двух списков (заведённые /
// доступные) с переключателем между ними.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// AssignScreenData — данные экрана назначений.
type AssignScreenData struct {
	// InURL/OutURL — страницы «заведённые» и «доступные».
	InURL  string
	OutURL string
	// ShowingIn — какой из списков открыт сейчас.
	ShowingIn bool
	// BackURL — возврат к родительскому списку.
	BackURL string
	// Search — применённое значение поиска по списку.
	Search string
	// Alert — сообщение об итоге последней операции, может быть nil.
	Alert templ.Component
	Table partials.AssignTableData
}

// AssignScreen — содержимое экрана назначений.
func AssignScreen(d AssignScreenData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		inCls, outCls := "btn btn-secondary btn-sm", "btn btn-sm"
		if d.ShowingIn {
			inCls, outCls = "btn btn-sm", "btn btn-secondary btn-sm"
		}
		current := d.OutURL
		if d.ShowingIn {
			current = d.InURL
		}
		if err := write(w, `<div class="card">`+
			`<a class="`+inCls+`" href="`+partials.E(d.InURL)+`">`+partials.E(i18n.T(ctx, "assign.show_in"))+`</a> `+
			`<a class="`+outCls+`" href="`+partials.E(d.OutURL)+`">`+partials.E(i18n.T(ctx, "assign.show_out"))+`</a> `+
			`<a class="btn btn-secondary btn-sm" href="`+partials.E(d.BackURL)+`">&larr;</a>`+
			`<form class="filter-bar" hx-get="`+partials.E(current)+`" hx-target="#assign-table" hx-swap="outerHTML">`+
			`<input type="search" name="search" value="`+partials.E(d.Search)+`" placeholder="`+partials.E(i18n.T(ctx, "common.search"))+`">`+
			`<button type="submit" class="btn btn-sm">`+partials.E(i18n.T(ctx, "common.apply"))+`</button>`+
			`</form>`+
			`</div>`); err != nil {
			return err
		}
		if err := write(w, `<div id="assign-alert">`); err != nil {
			return err
		}
		if d.Alert != nil {
			if err := d.Alert.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}
		return partials.AssignTable(d.Table).Render(ctx, w)
	})
}
