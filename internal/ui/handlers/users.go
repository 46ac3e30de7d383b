// users.go — страницы и операции над пользователями.
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

// userFilterDefaults — фильтры списка пользователей по умолчанию.
func userFilterDefaults() listing.Filters {
	return listing.Filters{"search": "", "status": listing.FilterAll}
}

// UsersHandler — обработчики экранов пользователей.
type UsersHandler struct {
	users  *service.UserService
	roles  *service.RoleService
	logger *slog.Logger
}

// NewUsersHandler создаёт UsersHandler.
func NewUsersHandler(users *service.UserService, roles *service.RoleService, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		users:  users,
		roles:  roles,
		logger: logger.With(slog.String("component", "ui.users")),
	}
}

// tableData собирает данные таблицы для запроса q.
func (h *UsersHandler) tableData(r *http.Request, q listing.Query) (partials.UsersTableData, error) {
	page, err := h.users.List(r.Context(), cred(r), q)
	if err != nil {
		return partials.UsersTableData{}, err
	}
	d := partials.UsersTableData{
		Page:    page,
		PageURL: pageURL("/users/table", q),
	}
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		d.CanEdit = p.Evaluator.Has(perm.ActionEditUser)
		d.CanDelete = p.Evaluator.Has(perm.ActionDeleteUser)
		d.CanAssign = p.Evaluator.Has(perm.ActionAssignFaceDeviceUser)
	}
	return d, nil
}

// Page обрабатывает GET /users.
func (h *UsersHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, userFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, pages.Layout(layoutData(r, "users.title", "/users"), errorAlert(r.Context(), err)))
		return
	}
	canCreate := false
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		canCreate = p.Evaluator.Has(perm.ActionCreateUser)
	}
	render(w, r, h.logger, pages.Layout(layoutData(r, "users.title", "/users"), pages.Users(pages.UsersPageData{
		Filters:   q.Filters,
		PerPage:   q.PerPage,
		CanCreate: canCreate,
		Table:     table,
	})))
}

// Table обрабатывает GET /users/table — HTMX-фрагмент таблицы
// для пагинации и применения фильтров.
func (h *UsersHandler) Table(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, userFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, partials.UsersTable(table))
}

// New обрабатывает GET /users/new — модалка создания.
func (h *UsersHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, pages.UserFormData{Input: model.UserInput{Status: true}}, true)
}

// Edit обрабатывает GET /users/{id}/edit — модалка редактирования.
func (h *UsersHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	u, err := h.users.Get(r.Context(), cred(r), id)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	input := model.UserInput{
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		Login:      u.Login,
		Status:     u.Status,
		CardNumber: u.CardNumber,
		CanLogin:   u.CanLogin,
	}
	if u.Includes != nil && u.Includes.Role != nil {
		input.RoleID = u.Includes.Role.ID
	}
	h.renderForm(w, r, pages.UserFormData{ID: id, Input: input}, true)
}

// renderForm отдаёт форму; wrapModal — оборачивать ли в модалку
// (false для повторного рендера с ошибками в #modal-body).
func (h *UsersHandler) renderForm(w http.ResponseWriter, r *http.Request, d pages.UserFormData, wrapModal bool) {
	roles, err := h.roleCatalog(r)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	d.Roles = roles
	form := pages.UserForm(d)
	if wrapModal {
		title := i18n.T(r.Context(), "users.create")
		if d.ID != 0 {
			title = i18n.T(r.Context(), "users.edit")
		}
		render(w, r, h.logger, partials.Modal(title, form))
		return
	}
	render(w, r, h.logger, form)
}

// roleCatalog — список ролей для select'а формы.
func (h *UsersHandler) roleCatalog(r *http.Request) ([]model.Role, error) {
	page, err := h.roles.List(r.Context(), cred(r), listing.NewQuery(nil).WithPerPage(listing.PerPageAll))
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Create обрабатывает POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	input := userInputFromForm(r)
	if _, err := h.users.Create(r.Context(), cred(r), input); err != nil {
		h.formError(w, r, pages.UserFormData{Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

// Update обрабатывает POST /users/{id}.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	input := userInputFromForm(r)
	if _, err := h.users.Update(r.Context(), cred(r), id, input); err != nil {
		h.formError(w, r, pages.UserFormData{ID: id, Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

// formError перерисовывает форму с ошибками: модалка остаётся
// открытой, введённые значения сохраняются.
func (h *UsersHandler) formError(w http.ResponseWriter, r *http.Request, d pages.UserFormData, err error) {
	d.Errors = fieldErrors(err)
	alert := errorAlert(r.Context(), err)
	roles, rolesErr := h.roleCatalog(r)
	if rolesErr == nil {
		d.Roles = roles
	}
	render(w, r, h.logger, concat(alert, pages.UserForm(d)))
}

// Delete обрабатывает DELETE /users/{id}: после удаления таблица
// перечитывается с первой страницы.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	var alert templ.Component
	if err := h.users.Delete(r.Context(), cred(r), id); err != nil {
		alert = errorAlert(r.Context(), err)
	}
	q := listing.NewQuery(userFilterDefaults().Active())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, concat(alert, partials.UsersTable(table)))
}

// userInputFromForm разбирает форму пользователя.
func userInputFromForm(r *http.Request) model.UserInput {
	_ = r.ParseForm()
	roleID, _ := strconv.ParseInt(r.PostFormValue("role_id"), 10, 64)
	return model.UserInput{
		FirstName:  r.PostFormValue("first_name"),
		LastName:   r.PostFormValue("last_name"),
		Phone:      r.PostFormValue("phone"),
		Login:      r.PostFormValue("login"),
		Password:   r.PostFormValue("password"),
		CardNumber: r.PostFormValue("card_number"),
		Status:     r.PostFormValue("status") == "1",
		CanLogin:   r.PostFormValue("can_login") == "1",
		RoleID:     roleID,
	}
}
