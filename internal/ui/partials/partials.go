// Пакет partials — переиспользуемые фрагменты разметки.
// Компоненты собраны руками на templ.ComponentFunc: фрагменты
// отдаются и целиком в составе страниц, и отдельно в ответ на
// HTMX-запросы.
package partials

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// E экранирует текст для HTML.
func E(s string) string { return templ.EscapeString(s) }

// writef пишет отформатированную разметку.
// Аргументы-строки должны быть уже экранированы через E.
func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// render вкладывает компонент в поток.
func render(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}
