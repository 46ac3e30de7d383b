// devices.go — страницы и операции над терминалами.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/domain/perm"
	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/service"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/middleware"
	"github.com/davrbek/facegate/internal/ui/pages"
	"github.com/davrbek/facegate/internal/ui/partials"
)

func deviceFilterDefaults() listing.Filters {
	return listing.Filters{
		"search": "",
		"status": listing.FilterAll,
		"type":   listing.FilterAll,
	}
}

// DevicesHandler — обработчики экранов терминалов.
type DevicesHandler struct {
	devices *service.DeviceService
	logger  *slog.Logger
}

// NewDevicesHandler создаёт DevicesHandler.
func NewDevicesHandler(devices *service.DeviceService, logger *slog.Logger) *DevicesHandler {
	return &DevicesHandler{
		devices: devices,
		logger:  logger.With(slog.String("component", "ui.devices")),
	}
}

func (h *DevicesHandler) tableData(r *http.Request, q listing.Query) (partials.DevicesTableData, error) {
	page, err := h.devices.List(r.Context(), cred(r), q)
	if err != nil {
		return partials.DevicesTableData{}, err
	}
	d := partials.DevicesTableData{
		Page:    page,
		PageURL: pageURL("/face-devices/table", q),
	}
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		d.CanEdit = p.Evaluator.Has(perm.ActionEditFaceDevice)
		d.CanDelete = p.Evaluator.Has(perm.ActionDeleteFaceDevice)
		d.CanAssign = p.Evaluator.Has(perm.ActionAssignFaceDeviceUser)
	}
	return d, nil
}

// Page обрабатывает GET /face-devices.
func (h *DevicesHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, deviceFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, pages.Layout(layoutData(r, "devices.title", "/face-devices"), errorAlert(r.Context(), err)))
		return
	}
	canCreate := false
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		canCreate = p.Evaluator.Has(perm.ActionCreateFaceDevice)
	}
	render(w, r, h.logger, pages.Layout(layoutData(r, "devices.title", "/face-devices"), pages.Devices(pages.DevicesPageData{
		Filters:   q.Filters,
		PerPage:   q.PerPage,
		CanCreate: canCreate,
		Table:     table,
	})))
}

// Table обрабатывает GET /face-devices/table.
func (h *DevicesHandler) Table(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, deviceFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, partials.DevicesTable(table))
}

// New обрабатывает GET /face-devices/new.
func (h *DevicesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, pages.DeviceFormData{
		Input: model.DeviceInput{Type: model.DeviceTypeEnter, Status: model.DeviceStatusActive},
	})
}

// Edit обрабатывает GET /face-devices/{id}/edit.
func (h *DevicesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	dev, err := h.devices.Get(r.Context(), cred(r), id)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	h.renderForm(w, r, pages.DeviceFormData{
		ID: id,
		Input: model.DeviceInput{
			Name:     dev.Name,
			Type:     dev.Type,
			Status:   dev.Status,
			IP:       dev.IP,
			Port:     dev.Port,
			Username: dev.Username,
			PushURL:  dev.PushURL,
		},
	})
}

func (h *DevicesHandler) renderForm(w http.ResponseWriter, r *http.Request, d pages.DeviceFormData) {
	title := i18n.T(r.Context(), "devices.create")
	if d.ID != 0 {
		title = i18n.T(r.Context(), "devices.edit")
	}
	render(w, r, h.logger, partials.Modal(title, pages.DeviceForm(d)))
}

// Create обрабатывает POST /face-devices.
func (h *DevicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	input := deviceInputFromForm(r)
	if _, err := h.devices.Create(r.Context(), cred(r), input); err != nil {
		h.formError(w, r, pages.DeviceFormData{Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

// Update обрабатывает POST /face-devices/{id}.
func (h *DevicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	input := deviceInputFromForm(r)
	if _, err := h.devices.Update(r.Context(), cred(r), id, input); err != nil {
		h.formError(w, r, pages.DeviceFormData{ID: id, Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

func (h *DevicesHandler) formError(w http.ResponseWriter, r *http.Request, d pages.DeviceFormData, err error) {
	d.Errors = fieldErrors(err)
	render(w, r, h.logger, concat(errorAlert(r.Context(), err), pages.DeviceForm(d)))
}

// Delete обрабатывает DELETE /face-devices/{id}.
func (h *DevicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	var alert templ.Component
	if err := h.devices.Delete(r.Context(), cred(r), id); err != nil {
		alert = errorAlert(r.Context(), err)
	}
	table, err := h.tableData(r, listing.NewQuery(deviceFilterDefaults()))
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, concat(alert, partials.DevicesTable(table)))
}

// deviceInputFromForm разбирает форму терминала.
// Пустая секция push URL означает pull-модель — поле не шлётся.
func deviceInputFromForm(r *http.Request) model.DeviceInput {
	_ = r.ParseForm()
	port, _ := strconv.Atoi(r.PostFormValue("port"))
	status := model.DeviceStatusNotActive
	if r.PostFormValue("status") == "1" {
		status = model.DeviceStatusActive
	}
	input := model.DeviceInput{
		Name:     r.PostFormValue("name"),
		Type:     r.PostFormValue("type"),
		Status:   status,
		IP:       r.PostFormValue("ip"),
		Port:     port,
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if host := r.PostFormValue("push_host"); host != "" {
		pushPort, _ := strconv.Atoi(r.PostFormValue("push_port"))
		input.PushURL = &model.PushURLConfig{
			Protocol:    r.PostFormValue("push_protocol"),
			AddressType: r.PostFormValue("push_address_type"),
			Host:        host,
			Port:        pushPort,
		}
	}
	return input
}
