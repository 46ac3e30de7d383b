// roles.go — страницы и операции над ролями.
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

func roleFilterDefaults() listing.Filters {
	return listing.Filters{"search": ""}
}

// RolesHandler — обработчики экранов ролей.
type RolesHandler struct {
	roles  *service.RoleService
	logger *slog.Logger
}

// NewRolesHandler создаёт RolesHandler.
func NewRolesHandler(roles *service.RoleService, logger *slog.Logger) *RolesHandler {
	return &RolesHandler{
		roles:  roles,
		logger: logger.With(slog.String("component", "ui.roles")),
	}
}

func (h *RolesHandler) tableData(r *http.Request, q listing.Query) (partials.RolesTableData, error) {
	page, err := h.roles.List(r.Context(), cred(r), q)
	if err != nil {
		return partials.RolesTableData{}, err
	}
	d := partials.RolesTableData{
		Page:    page,
		PageURL: pageURL("/roles/table", q),
	}
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		d.CanEdit = p.Evaluator.Has(perm.ActionEditRole)
		d.CanDelete = p.Evaluator.Has(perm.ActionDeleteRole)
	}
	return d, nil
}

// Page обрабатывает GET /roles.
func (h *RolesHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, roleFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, pages.Layout(layoutData(r, "roles.title", "/roles"), errorAlert(r.Context(), err)))
		return
	}
	canCreate := false
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		canCreate = p.Evaluator.Has(perm.ActionCreateRole)
	}
	render(w, r, h.logger, pages.Layout(layoutData(r, "roles.title", "/roles"), pages.Roles(pages.RolesPageData{
		Filters:   q.Filters,
		PerPage:   q.PerPage,
		CanCreate: canCreate,
		Table:     table,
	})))
}

// Table обрабатывает GET /roles/table.
func (h *RolesHandler) Table(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r, roleFilterDefaults())
	table, err := h.tableData(r, q)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, partials.RolesTable(table))
}

// New обрабатывает GET /roles/new.
func (h *RolesHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, pages.RoleFormData{
		Input: model.RoleInput{Name: model.LocalizedText{}, Description: model.LocalizedText{}},
	}, true)
}

// Edit обрабатывает GET /roles/{id}/edit.
func (h *RolesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	role, err := h.roles.Get(r.Context(), cred(r), id)
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	permIDs := make([]int64, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		permIDs = append(permIDs, p.ID)
	}
	h.renderForm(w, r, pages.RoleFormData{
		ID: id,
		Input: model.RoleInput{
			Name:          role.Name,
			Description:   role.Description,
			Key:           role.Key,
			PermissionIDs: permIDs,
		},
	}, true)
}

func (h *RolesHandler) renderForm(w http.ResponseWriter, r *http.Request, d pages.RoleFormData, wrapModal bool) {
	catalog, err := h.roles.Permissions(r.Context(), cred(r))
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	d.Permissions = catalog
	form := pages.RoleForm(d)
	if wrapModal {
		title := i18n.T(r.Context(), "roles.create")
		if d.ID != 0 {
			title = i18n.T(r.Context(), "roles.edit")
		}
		render(w, r, h.logger, partials.Modal(title, form))
		return
	}
	render(w, r, h.logger, form)
}

// Create обрабатывает POST /roles.
func (h *RolesHandler) Create(w http.ResponseWriter, r *http.Request) {
	input := roleInputFromForm(r)
	if _, err := h.roles.Create(r.Context(), cred(r), input); err != nil {
		h.formError(w, r, pages.RoleFormData{Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

// Update обрабатывает POST /roles/{id}.
func (h *RolesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	input := roleInputFromForm(r)
	if _, err := h.roles.Update(r.Context(), cred(r), id, input); err != nil {
		h.formError(w, r, pages.RoleFormData{ID: id, Input: input}, err)
		return
	}
	closeModalAndRefresh(w)
}

func (h *RolesHandler) formError(w http.ResponseWriter, r *http.Request, d pages.RoleFormData, err error) {
	d.Errors = fieldErrors(err)
	if catalog, catErr := h.roles.Permissions(r.Context(), cred(r)); catErr == nil {
		d.Permissions = catalog
	}
	render(w, r, h.logger, concat(errorAlert(r.Context(), err), pages.RoleForm(d)))
}

// Delete обрабатывает DELETE /roles/{id}.
func (h *RolesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	var alert templ.Component
	if err := h.roles.Delete(r.Context(), cred(r), id); err != nil {
		alert = errorAlert(r.Context(), err)
	}
	table, err := h.tableData(r, listing.NewQuery(roleFilterDefaults()))
	if err != nil {
		render(w, r, h.logger, errorAlert(r.Context(), err))
		return
	}
	render(w, r, h.logger, concat(alert, partials.RolesTable(table)))
}

// roleInputFromForm разбирает форму роли.
func roleInputFromForm(r *http.Request) model.RoleInput {
	_ = r.ParseForm()
	var permIDs []int64
	for _, raw := range r.PostForm["permission_ids"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			permIDs = append(permIDs, id)
		}
	}
	return model.RoleInput{
		Name: model.LocalizedText{
			"uz": r.PostFormValue("name_uz"),
			"ru": r.PostFormValue("name_ru"),
			"en": r.PostFormValue("name_en"),
		},
		Description: model.LocalizedText{
			"uz": r.PostFormValue("description_uz"),
			"ru": r.PostFormValue("description_ru"),
			"en": r.PostFormValue("description_en"),
		},
		Key:           r.PostFormValue("key"),
		PermissionIDs: permIDs,
	}
}
