// assignments.go — четыре экрана назначений пользователь ↔ терминал:
// пользователи на терминале, пользователи вне терминала, терминалы
// пользователя, терминалы без пользователя. Общая механика: выбор
// строк, одиночные и массовые действия, пагинация.
// Семантика перечитывания: после заведения список остаётся на
// текущей странице, после снятия возвращается на первую. Логическая
// ошибка backend'а показывает alert и НЕ перечитывает список.
package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/perm"
	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/service"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/middleware"
	"github.com/davrbek/facegate/internal/ui/pages"
	"github.com/davrbek/facegate/internal/ui/partials"
)

func assignFilterDefaults() listing.Filters {
	return listing.Filters{"search": ""}
}

// AssignmentsHandler — обработчики экранов назначений.
type AssignmentsHandler struct {
	assignments *service.AssignmentService
	users       *service.UserService
	devices     *service.DeviceService
	logger      *slog.Logger
}

// NewAssignmentsHandler создаёт AssignmentsHandler.
func NewAssignmentsHandler(
	assignments *service.AssignmentService,
	users *service.UserService,
	devices *service.DeviceService,
	logger *slog.Logger,
) *AssignmentsHandler {
	return &AssignmentsHandler{
		assignments: assignments,
		users:       users,
		devices:     devices,
		logger:      logger.With(slog.String("component", "ui.assignments")),
	}
}

// canAct — есть ли у пользователя право назначать.
func canAct(r *http.Request) bool {
	p := middleware.PrincipalFrom(r.Context())
	return p != nil && p.Evaluator.Has(perm.ActionAssignFaceDeviceUser)
}

// hidden — скрытые поля формы действия: контекст текущего списка.
func hidden(q listing.Query) map[string]string {
	h := map[string]string{
		"page": strconv.Itoa(q.Page),
	}
	if q.PerPage == listing.PerPageAll {
		h["limit"] = "all"
	} else {
		h["limit"] = strconv.Itoa(q.PerPage)
	}
	for k, v := range q.Filters {
		h[k] = v
	}
	return h
}

// actionQuery восстанавливает запрос списка из полей формы действия.
func actionQuery(r *http.Request) listing.Query {
	_ = r.ParseForm()
	q := listing.NewQuery(listing.Filters{"search": r.PostFormValue("search")})
	if limit := r.PostFormValue("limit"); limit != "" {
		q = q.WithPerPage(parsePerPage(limit))
	}
	if page, err := strconv.Atoi(r.PostFormValue("page")); err == nil && page > 0 {
		q = q.WithPage(page)
	}
	return q
}

// selectedIDs собирает отмеченные id через выделение,
// привязанное к ключу текущего запроса. Добавление, не Toggle:
// повторившееся в форме значение не должно гасить само себя.
func selectedIDs(r *http.Request, q listing.Query) []int64 {
	ids := make([]int64, 0, len(r.PostForm["ids"]))
	for _, raw := range r.PostForm["ids"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	sel := listing.NewSelection(q.Key())
	sel.SelectPage(ids)
	return sel.IDs()
}

// alertOnly отвечает alert'ом в #assign-alert, не трогая таблицу.
func (h *AssignmentsHandler) alertOnly(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("HX-Retarget", "#assign-alert")
	w.Header().Set("HX-Reswap", "innerHTML")
	render(w, r, h.logger, errorAlert(r.Context(), err))
}

// --- Пользователи терминала ---

// usersOfDeviceTable строит таблицу одного из списков экрана
// «пользователи терминала». in — заведённые, иначе доступные.
func (h *AssignmentsHandler) usersOfDeviceTable(r *http.Request, deviceID int64, in bool, q listing.Query) (partials.AssignTableData, error) {
	ctx := r.Context()
	base := "/face-devices/" + strconv.FormatInt(deviceID, 10) + "/users"
	d := partials.AssignTableData{
		ContainerID: "assign-table",
		Headers: []string{
			"ID",
			i18n.T(ctx, "users.full_name"),
			i18n.T(ctx, "users.phone"),
		},
		CanAct:      canAct(r),
		HeaderState: listing.HeaderUnchecked,
		Hidden:      hidden(q),
	}

	if in {
		page, err := h.assignments.UsersInDevice(ctx, cred(r), deviceID, q)
		if err != nil {
			return d, err
		}
		for _, du := range page.Items {
			d.Rows = append(d.Rows, partials.AssignRow{
				ID:    du.ID,
				Cells: []string{strconv.FormatInt(du.ID, 10), du.FullName(), du.Phone},
				Sync:  &du.SyncChannels,
			})
		}
		d.ShowSync = true
		d.Danger = true
		d.ActionURL = base + "/remove"
		d.ActionKey = "assign.remove"
		d.BulkKey = "assign.remove_selected"
		d.Index, d.TotalPages, d.Total = page.Index, page.TotalPages, page.Total
		d.PageURL = pageURL(base, q)
	} else {
		page, err := h.assignments.UsersOutDevice(ctx, cred(r), deviceID, q)
		if err != nil {
			return d, err
		}
		for _, u := range page.Items {
			d.Rows = append(d.Rows, partials.AssignRow{
				ID:    u.ID,
				Cells: []string{strconv.FormatInt(u.ID, 10), u.FullName(), u.Phone},
			})
		}
		d.ActionURL = base + "/assign"
		d.ActionKey = "assign.assign"
		d.BulkKey = "assign.assign_selected"
		d.Index, d.TotalPages, d.Total = page.Index, page.TotalPages, page.Total
		d.PageURL = pageURL(base+"/out", q)
	}
	return d, nil
}

// usersOfDevicePage отдаёт экран целиком или только таблицу (HTMX).
func (h *AssignmentsHandler) usersOfDevicePage(w http.ResponseWriter, r *http.Request, in bool) {
	deviceID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := listQuery(r, assignFilterDefaults())
	table, err := h.usersOfDeviceTable(r, deviceID, in, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	if r.Header.Get("HX-Request") == "true" {
		render(w, r, h.logger, partials.AssignTable(table))
		return
	}

	dev, err := h.devices.Get(r.Context(), cred(r), deviceID)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	base := "/face-devices/" + strconv.FormatInt(deviceID, 10) + "/users"
	titleKey := "assign.users_in_device"
	if !in {
		titleKey = "assign.users_out_device"
	}
	screen := pages.AssignScreen(pages.AssignScreenData{
		InURL:     base,
		OutURL:    base + "/out",
		ShowingIn: in,
		BackURL:   "/face-devices",
		Search:    q.Filters["search"],
		Table:     table,
	})
	render(w, r, h.logger, pages.Layout(layoutData(r, "devices.title", "/face-devices"), concat(
		titleCard(i18n.Tf(r.Context(), titleKey, dev.Name)),
		screen,
	)))
}

// UsersInDevice обрабатывает GET /face-devices/{id}/users.
func (h *AssignmentsHandler) UsersInDevice(w http.ResponseWriter, r *http.Request) {
	h.usersOfDevicePage(w, r, true)
}

// UsersOutDevice обрабатывает GET /face-devices/{id}/users/out.
func (h *AssignmentsHandler) UsersOutDevice(w http.ResponseWriter, r *http.Request) {
	h.usersOfDevicePage(w, r, false)
}

// AssignUsers обрабатывает POST /face-devices/{id}/users/assign.
func (h *AssignmentsHandler) AssignUsers(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := actionQuery(r)
	ids := selectedIDs(r, q)
	if len(ids) > 0 {
		if err := h.assignments.AssignUsers(r.Context(), cred(r), deviceID, ids); err != nil {
			h.alertOnly(w, r, err)
			return
		}
	}
	pair := listing.Pair{Out: q}.AfterAssign()
	table, err := h.usersOfDeviceTable(r, deviceID, false, pair.Out)
	if err != nil {
		h.alertOnly(w, r, err)
		return
	}
	render(w, r, h.logger, partials.AssignTable(table))
}

// RemoveUsers обрабатывает POST /face-devices/{id}/users/remove.
func (h *AssignmentsHandler) RemoveUsers(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := actionQuery(r)
	ids := selectedIDs(r, q)
	if len(ids) > 0 {
		if err := h.assignments.RemoveUsers(r.Context(), cred(r), deviceID, ids); err != nil {
			h.alertOnly(w, r, err)
			return
		}
	}
	pair := listing.Pair{In: q}.AfterRemove()
	table, err := h.usersOfDeviceTable(r, deviceID, true, pair.In)
	if err != nil {
		h.alertOnly(w, r, err)
		return
	}
	render(w, r, h.logger, partials.AssignTable(table))
}

// --- Терминалы пользователя ---

// devicesOfUserTable — списки экрана «терминалы пользователя».
func (h *AssignmentsHandler) devicesOfUserTable(r *http.Request, userID int64, in bool, q listing.Query) (partials.AssignTableData, error) {
	ctx := r.Context()
	base := "/users/" + strconv.FormatInt(userID, 10) + "/devices"
	d := partials.AssignTableData{
		ContainerID: "assign-table",
		Headers: []string{
			"ID",
			i18n.T(ctx, "devices.name"),
			i18n.T(ctx, "devices.ip"),
		},
		CanAct:      canAct(r),
		HeaderState: listing.HeaderUnchecked,
		Hidden:      hidden(q),
	}

	if in {
		page, err := h.assignments.DevicesInUser(ctx, cred(r), userID, q)
		if err != nil {
			return d, err
		}
		for _, ud := range page.Items {
			d.Rows = append(d.Rows, partials.AssignRow{
				ID:    ud.ID,
				Cells: []string{strconv.FormatInt(ud.ID, 10), ud.Name, ud.IP},
				Sync:  &ud.SyncChannels,
			})
		}
		d.ShowSync = true
		d.Danger = true
		d.ActionURL = base + "/remove"
		d.ActionKey = "assign.remove"
		d.BulkKey = "assign.remove_selected"
		d.Index, d.TotalPages, d.Total = page.Index, page.TotalPages, page.Total
		d.PageURL = pageURL(base, q)
	} else {
		page, err := h.assignments.DevicesOutUser(ctx, cred(r), userID, q)
		if err != nil {
			return d, err
		}
		for _, dev := range page.Items {
			d.Rows = append(d.Rows, partials.AssignRow{
				ID:    dev.ID,
				Cells: []string{strconv.FormatInt(dev.ID, 10), dev.Name, dev.IP},
			})
		}
		d.ActionURL = base + "/assign"
		d.ActionKey = "assign.assign"
		d.BulkKey = "assign.assign_selected"
		d.Index, d.TotalPages, d.Total = page.Index, page.TotalPages, page.Total
		d.PageURL = pageURL(base+"/out", q)
	}
	return d, nil
}

func (h *AssignmentsHandler) devicesOfUserPage(w http.ResponseWriter, r *http.Request, in bool) {
	userID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := listQuery(r, assignFilterDefaults())
	table, err := h.devicesOfUserTable(r, userID, in, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	if r.Header.Get("HX-Request") == "true" {
		render(w, r, h.logger, partials.AssignTable(table))
		return
	}

	u, err := h.users.Get(r.Context(), cred(r), userID)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	base := "/users/" + strconv.FormatInt(userID, 10) + "/devices"
	titleKey := "assign.devices_in_user"
	if !in {
		titleKey = "assign.devices_out_user"
	}
	screen := pages.AssignScreen(pages.AssignScreenData{
		InURL:     base,
		OutURL:    base + "/out",
		ShowingIn: in,
		BackURL:   "/users",
		Search:    q.Filters["search"],
		Table:     table,
	})
	render(w, r, h.logger, pages.Layout(layoutData(r, "users.title", "/users"), concat(
		titleCard(i18n.Tf(r.Context(), titleKey, u.FullName())),
		screen,
	)))
}

// DevicesInUser обрабатывает GET /users/{id}/devices.
func (h *AssignmentsHandler) DevicesInUser(w http.ResponseWriter, r *http.Request) {
	h.devicesOfUserPage(w, r, true)
}

// DevicesOutUser обрабатывает GET /users/{id}/devices/out.
func (h *AssignmentsHandler) DevicesOutUser(w http.ResponseWriter, r *http.Request) {
	h.devicesOfUserPage(w, r, false)
}

// AssignDevices обрабатывает POST /users/{id}/devices/assign.
func (h *AssignmentsHandler) AssignDevices(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := actionQuery(r)
	ids := selectedIDs(r, q)
	if len(ids) > 0 {
		if err := h.assignments.AssignDevices(r.Context(), cred(r), userID, ids); err != nil {
			h.alertOnly(w, r, err)
			return
		}
	}
	pair := listing.Pair{Out: q}.AfterAssign()
	table, err := h.devicesOfUserTable(r, userID, false, pair.Out)
	if err != nil {
		h.alertOnly(w, r, err)
		return
	}
	render(w, r, h.logger, partials.AssignTable(table))
}

// RemoveDevices обрабатывает POST /users/{id}/devices/remove.
func (h *AssignmentsHandler) RemoveDevices(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	q := actionQuery(r)
	ids := selectedIDs(r, q)
	if len(ids) > 0 {
		if err := h.assignments.RemoveDevices(r.Context(), cred(r), userID, ids); err != nil {
			h.alertOnly(w, r, err)
			return
		}
	}
	pair := listing.Pair{In: q}.AfterRemove()
	table, err := h.devicesOfUserTable(r, userID, true, pair.In)
	if err != nil {
		h.alertOnly(w, r, err)
		return
	}
	render(w, r, h.logger, partials.AssignTable(table))
}

// titleCard — карточка с подзаголовком экрана.
func titleCard(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="card"><strong>`+partials.E(title)+`</strong></div>`)
		return err
	})
}
