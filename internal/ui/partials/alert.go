// alert.go — alert'ы об ошибках и успехах операций.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert — красный alert с сообщением.
func ErrorAlert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<div class="alert alert-error" role="alert">%s</div>`, E(message))
	})
}

// ErrorAlerts — по одному alert'у на каждое сообщение.
// Используется для ошибок валидации: одно поле — один alert.
func ErrorAlerts(messages []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, m := range messages {
			if err := writef(w, `<div class="alert alert-error" role="alert">%s</div>`, E(m)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SuccessAlert — зелёный alert.
func SuccessAlert(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<div class="alert alert-success" role="alert">%s</div>`, E(message))
	})
}
