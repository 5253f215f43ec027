package handler

import (
	"net/http"

	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/service"
)

// DashboardHandler обрабатывает эндпоинт агрегированной статистики
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler создает новый DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get обрабатывает GET /api/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	dashboard, err := h.dashboardService.GetDashboard(r.Context(), actor)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, dashboard)
}
