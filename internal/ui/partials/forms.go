// forms.go — поля форм с выводом ошибок валидации под полем.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Field — одно поле формы.
type Field struct {
	Label  string
	Name   string
	Value  string
	Type   string // text | password | number; по умолчанию text
	Errors []string
}

// Option — вариант select'а.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Input — текстовое поле с label и ошибками.
func Input(f Field) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		typ := f.Type
		if typ == "" {
			typ = "text"
		}
		if err := writef(w, `<div class="field"><label>%s</label><input type="%s" name="%s" value="%s">`,
			E(f.Label), E(typ), E(f.Name), E(f.Value)); err != nil {
			return err
		}
		if err := fieldErrors(w, f.Errors); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}

// Select — выпадающий список с label и ошибками.
func Select(label, name string, options []Option, errs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="field"><label>%s</label><select name="%s">`, E(label), E(name)); err != nil {
			return err
		}
		for _, o := range options {
			sel := ""
			if o.Selected {
				sel = " selected"
			}
			if err := writef(w, `<option value="%s"%s>%s</option>`, E(o.Value), sel, E(o.Label)); err != nil {
				return err
			}
		}
		if err := writef(w, `</select>`); err != nil {
			return err
		}
		if err := fieldErrors(w, errs); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}

// Checkbox — флажок с label.
func Checkbox(label, name string, checked bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		chk := ""
		if checked {
			chk = " checked"
		}
		return writef(w, `<div class="field"><label><input type="checkbox" name="%s" value="1"%s> %s</label></div>`,
			E(name), chk, E(label))
	})
}

func fieldErrors(w io.Writer, errs []string) error {
	for _, e := range errs {
		if err := writef(w, `<div class="error">%s</div>`, E(e)); err != nil {
			return err
		}
	}
	return nil
}
