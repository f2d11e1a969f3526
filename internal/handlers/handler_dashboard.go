package handlers

import (
	"net/http"

	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the reporting aggregates.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// getStats godoc
// @Summary Dashboard aggregates
// @Description Revenue and transaction counts over settled sales plus catalog health
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// registerDashboardRoutes registers the admin-only dashboard route.
func registerDashboardRoutes(group *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, adminOnly gin.HandlerFunc) {
	h := newDashboardHandler(dashboardService)
	group.GET("/dashboard", adminOnly, h.getStats)
}
