// dashboard.go — главная страница.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/davrbek/facegate/internal/ui/middleware"
	"github.com/davrbek/facegate/internal/ui/pages"
)

// DashboardHandler — главная страница панели.
type DashboardHandler struct {
	logger *slog.Logger
}

// NewDashboardHandler создаёт DashboardHandler.
func NewDashboardHandler(logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{logger: logger.With(slog.String("component", "ui.dashboard"))}
}

// Page обрабатывает GET /dashboard.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFrom(r.Context())
	userName, roleName := "", ""
	if p != nil {
		userName = p.User.FullName()
		roleName = p.Evaluator.RoleName()
	}
	render(w, r, h.logger, pages.Layout(
		layoutData(r, "dashboard.title", "/dashboard"),
		pages.Dashboard(userName, roleName),
	))
}
