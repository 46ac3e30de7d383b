// roles.go — страница ролей и форма роли.
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

// RolesPageData — данные страницы ролей.
type RolesPageData struct {
	Filters   listing.Filters
	PerPage   int
	CanCreate bool
	Table     partials.RolesTableData
}

// Roles — содержимое страницы ролей.
func Roles(d RolesPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.CanCreate {
			if err := write(w, `<div class="card"><button class="btn" hx-get="/roles/new" hx-target="#modal-root">`+
				partials.E(i18n.T(ctx, "roles.create"))+`</button></div>`); err != nil {
				return err
			}
		}
		bar := filterBar("/roles/table", "#roles-table", d.PerPage,
			searchField(ctx, d.Filters["search"]),
		)
		if err := bar.Render(ctx, w); err != nil {
			return err
		}
		return partials.RolesTable(d.Table).Render(ctx, w)
	})
}

// RoleFormData — данные формы роли.
type RoleFormData struct {
	ID          int64
	Input       model.RoleInput
	Permissions []model.Permission // полный каталог
	Errors      map[string][]string
}

// RoleForm — содержимое модального окна роли: локализованные
// название и описание, ключ, чекбоксы прав из каталога.
func RoleForm(d RoleFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/roles"
		if d.ID != 0 {
			action = "/roles/" + strconv.FormatInt(d.ID, 10)
		}
		if err := write(w, `<form hx-post="`+partials.E(action)+`" hx-target="#modal-body">`); err != nil {
			return err
		}

		fields := []partials.Field{
			{Label: i18n.T(ctx, "roles.name") + " (uz)", Name: "name_uz", Value: d.Input.Name["uz"], Errors: d.Errors["name.uz"]},
			{Label: i18n.T(ctx, "roles.name") + " (ru)", Name: "name_ru", Value: d.Input.Name["ru"], Errors: d.Errors["name.ru"]},
			{Label: i18n.T(ctx, "roles.name") + " (en)", Name: "name_en", Value: d.Input.Name["en"], Errors: d.Errors["name.en"]},
			{Label: i18n.T(ctx, "roles.key"), Name: "key", Value: d.Input.Key, Errors: d.Errors["key"]},
			{Label: i18n.T(ctx, "roles.description") + " (uz)", Name: "description_uz", Value: d.Input.Description["uz"], Errors: d.Errors["description.uz"]},
			{Label: i18n.T(ctx, "roles.description") + " (ru)", Name: "description_ru", Value: d.Input.Description["ru"], Errors: d.Errors["description.ru"]},
			{Label: i18n.T(ctx, "roles.description") + " (en)", Name: "description_en", Value: d.Input.Description["en"], Errors: d.Errors["description.en"]},
		}
		for _, f := range fields {
			if err := partials.Input(f).Render(ctx, w); err != nil {
				return err
			}
		}

		selected := make(map[int64]bool, len(d.Input.PermissionIDs))
		for _, id := range d.Input.PermissionIDs {
			selected[id] = true
		}
		if err := write(w, `<div class="field"><label>`+partials.E(i18n.T(ctx, "roles.permissions"))+`</label>`); err != nil {
			return err
		}
		for _, p := range d.Permissions {
			chk := ""
			if selected[p.ID] {
				chk = " checked"
			}
			if err := write(w, `<label style="display:block"><input type="checkbox" name="permission_ids" value="`+
				strconv.FormatInt(p.ID, 10)+`"`+chk+`> `+partials.E(p.Action)+`</label>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}

		return write(w, `<div class="actions">`+
			`<button type="button" class="btn btn-secondary" data-modal-close>`+partials.E(i18n.T(ctx, "common.cancel"))+`</button>`+
			`<button type="submit" class="btn">`+partials.E(i18n.T(ctx, "common.save"))+`</button></div></form>`)
	})
}
