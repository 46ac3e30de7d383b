// users.go — страница пользователей и форма пользователя.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// UsersPageData — данные страницы пользователей.
type UsersPageData struct {
	Filters   listing.Filters // черновые значения фильтров
	PerPage   int
	CanCreate bool
	Table     partials.UsersTableData
}

// Users — содержимое страницы пользователей: фильтры,
// кнопка создания, таблица.
func Users(d UsersPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.CanCreate {
			if err := write(w, `<div class="card"><button class="btn" hx-get="/users/new" hx-target="#modal-root">`+
				partials.E(i18n.T(ctx, "users.create"))+`</button></div>`); err != nil {
				return err
			}
		}
		bar := filterBar("/users/table", "#users-table", d.PerPage,
			searchField(ctx, d.Filters["search"]),
			partials.Select(i18n.T(ctx, "common.status"), "status",
				statusOptions(ctx, d.Filters["status"], "active", "inactive"), nil),
		)
		if err := bar.Render(ctx, w); err != nil {
			return err
		}
		return partials.UsersTable(d.Table).Render(ctx, w)
	})
}

// UserFormData — данные формы создания/редактирования пользователя.
type UserFormData struct {
	// ID — 0 для создания.
	ID     int64
	Input  model.UserInput
	Roles  []model.Role
	Errors map[string][]string
}

// UserForm — содержимое модального окна пользователя.
// При ошибках валидации фрагмент возвращается с заполненными
// Errors: окно остаётся открытым, введённые значения сохраняются.
func UserForm(d UserFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/users"
		if d.ID != 0 {
			action = "/users/" + strconv.FormatInt(d.ID, 10)
		}
		if err := write(w, `<form hx-post="`+partials.E(action)+`" hx-target="#modal-body">`); err != nil {
			return err
		}

		fields := []partials.Field{
			{Label: i18n.T(ctx, "users.first_name"), Name: "first_name", Value: d.Input.FirstName, Errors: d.Errors["first_name"]},
			{Label: i18n.T(ctx, "users.last_name"), Name: "last_name", Value: d.Input.LastName, Errors: d.Errors["last_name"]},
			{Label: i18n.T(ctx, "users.phone"), Name: "phone", Value: d.Input.Phone, Errors: d.Errors["phone"]},
			{Label: i18n.T(ctx, "users.card_number"), Name: "card_number", Value: d.Input.CardNumber, Errors: d.Errors["card_number"]},
			{Label: i18n.T(ctx, "users.login"), Name: "login", Value: d.Input.Login, Errors: d.Errors["login"]},
			{Label: i18n.T(ctx, "users.password"), Name: "password", Type: "password", Errors: d.Errors["password"]},
		}
		for _, f := range fields {
			if err := partials.Input(f).Render(ctx, w); err != nil {
				return err
			}
		}

		lang := i18n.Lang(ctx)
		roleOpts := make([]partials.Option, 0, len(d.Roles))
		for _, r := range d.Roles {
			roleOpts = append(roleOpts, partials.Option{
				Value:    strconv.FormatInt(r.ID, 10),
				Label:    r.Name.In(lang),
				Selected: r.ID == d.Input.RoleID,
			})
		}
		if err := partials.Select(i18n.T(ctx, "users.role"), "role_id", roleOpts, d.Errors["role_id"]).Render(ctx, w); err != nil {
			return err
		}

		if err := partials.Checkbox(i18n.T(ctx, "common.active"), "status", d.Input.Status).Render(ctx, w); err != nil {
			return err
		}
		if err := partials.Checkbox(i18n.T(ctx, "users.can_login"), "can_login", d.Input.CanLogin).Render(ctx, w); err != nil {
			return err
		}

		return write(w, `<div class="actions">`+
			`<button type="button" class="btn btn-secondary" data-modal-close>`+partials.E(i18n.T(ctx, "common.cancel"))+`</button>`+
			`<button type="submit" class="btn">`+partials.E(i18n.T(ctx, "common.save"))+`</button></div></form>`)
	})
}
