// devices.go — страница терминалов и форма терминала.
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

// DevicesPageData — данные страницы терминалов.
type DevicesPageData struct {
	Filters   listing.Filters
	PerPage   int
	CanCreate bool
	Table     partials.DevicesTableData
}

// Devices — содержимое страницы терминалов.
func Devices(d DevicesPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d.CanCreate {
			if err := write(w, `<div class="card"><button class="btn" hx-get="/face-devices/new" hx-target="#modal-root">`+
				partials.E(i18n.T(ctx, "devices.create"))+`</button></div>`); err != nil {
				return err
			}
		}
		typeOpts := []partials.Option{
			{Value: listing.FilterAll, Label: i18n.T(ctx, "common.all"), Selected: d.Filters["type"] == "" || d.Filters["type"] == listing.FilterAll},
			{Value: model.DeviceTypeEnter, Label: i18n.T(ctx, "devices.type.enter"), Selected: d.Filters["type"] == model.DeviceTypeEnter},
			{Value: model.DeviceTypeExit, Label: i18n.T(ctx, "devices.type.exit"), Selected: d.Filters["type"] == model.DeviceTypeExit},
		}
		bar := filterBar("/face-devices/table", "#devices-table", d.PerPage,
			searchField(ctx, d.Filters["search"]),
			partials.Select(i18n.T(ctx, "common.status"), "status",
				statusOptions(ctx, d.Filters["status"], model.DeviceStatusActive, model.DeviceStatusNotActive), nil),
			partials.Select(i18n.T(ctx, "devices.type"), "type", typeOpts, nil),
		)
		if err := bar.Render(ctx, w); err != nil {
			return err
		}
		return partials.DevicesTable(d.Table).Render(ctx, w)
	})
}

// DeviceFormData — данные формы терминала.
type DeviceFormData struct {
	ID     int64
	Input  model.DeviceInput
	Errors map[string][]string
}

// DeviceForm — содержимое модального окна терминала,
// включая необязательную секцию push URL.
func DeviceForm(d DeviceFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/face-devices"
		if d.ID != 0 {
			action = "/face-devices/" + strconv.FormatInt(d.ID, 10)
		}
		if err := write(w, `<form hx-post="`+partials.E(action)+`" hx-target="#modal-body">`); err != nil {
			return err
		}

		port := ""
		if d.Input.Port != 0 {
			port = strconv.Itoa(d.Input.Port)
		}
		fields := []partials.Field{
			{Label: i18n.T(ctx, "devices.name"), Name: "name", Value: d.Input.Name, Errors: d.Errors["name"]},
			{Label: i18n.T(ctx, "devices.ip"), Name: "ip", Value: d.Input.IP, Errors: d.Errors["ip"]},
			{Label: i18n.T(ctx, "devices.port"), Name: "port", Value: port, Type: "number", Errors: d.Errors["port"]},
			{Label: i18n.T(ctx, "devices.username"), Name: "username", Value: d.Input.Username, Errors: d.Errors["username"]},
			{Label: i18n.T(ctx, "devices.password"), Name: "password", Type: "password", Errors: d.Errors["password"]},
		}
		for _, f := range fields {
			if err := partials.Input(f).Render(ctx, w); err != nil {
				return err
			}
		}

		typeOpts := []partials.Option{
			{Value: model.DeviceTypeEnter, Label: i18n.T(ctx, "devices.type.enter"), Selected: d.Input.Type != model.DeviceTypeExit},
			{Value: model.DeviceTypeExit, Label: i18n.T(ctx, "devices.type.exit"), Selected: d.Input.Type == model.DeviceTypeExit},
		}
		if err := partials.Select(i18n.T(ctx, "devices.type"), "type", typeOpts, d.Errors["type"]).Render(ctx, w); err != nil {
			return err
		}
		if err := partials.Checkbox(i18n.T(ctx, "common.active"), "status", d.Input.Status == model.DeviceStatusActive).Render(ctx, w); err != nil {
			return err
		}

		// Секция push URL: pull-модель, если не заполнена.
		push := d.Input.PushURL
		if push == nil {
			push = &model.PushURLConfig{}
		}
		pushPort := ""
		if push.Port != 0 {
			pushPort = strconv.Itoa(push.Port)
		}
		if err := write(w, `<div class="field"><label>`+partials.E(i18n.T(ctx, "devices.push.title"))+`</label></div>`); err != nil {
			return err
		}
		pushFields := []partials.Field{
			{Label: i18n.T(ctx, "devices.push.protocol"), Name: "push_protocol", Value: push.Protocol, Errors: d.Errors["push_url.protocol"]},
			{Label: i18n.T(ctx, "devices.push.address_type"), Name: "push_address_type", Value: push.AddressType, Errors: d.Errors["push_url.address_type"]},
			{Label: i18n.T(ctx, "devices.push.host"), Name: "push_host", Value: push.Host, Errors: d.Errors["push_url.host"]},
			{Label: i18n.T(ctx, "devices.push.port"), Name: "push_port", Value: pushPort, Type: "number", Errors: d.Errors["push_url.port"]},
		}
		for _, f := range pushFields {
			if err := partials.Input(f).Render(ctx, w); err != nil {
				return err
			}
		}

		return write(w, `<div class="actions">`+
			`<button type="button" class="btn btn-secondary" data-modal-close>`+partials.E(i18n.T(ctx, "common.cancel"))+`</button>`+
			`<button type="submit" class="btn">`+partials.E(i18n.T(ctx, "common.save"))+`</button></div></form>`)
	})
}
