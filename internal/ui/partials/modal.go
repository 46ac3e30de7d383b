// modal.go — модальное окно для форм создания и редактирования.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Modal оборачивает body в модальное окно с заголовком.
// Ответ формы с ошибками валидации заменяет содержимое #modal-body,
// окно при этом остаётся открытым.
func Modal(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="modal-backdrop" id="modal"><div class="modal"><h2>%s</h2><div id="modal-body">`, E(title)); err != nil {
			return err
		}
		if err := render(ctx, w, body); err != nil {
			return err
		}
		return writef(w, `</div></div></div>`)
	})
}
