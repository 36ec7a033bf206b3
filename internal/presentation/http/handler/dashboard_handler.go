package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/solarline/pos-gateway/internal/application/service"
	"github.com/solarline/pos-gateway/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard metric requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Metrics returns the aggregated dashboard snapshot
func (h *DashboardHandler) Metrics(c *gin.Context) {
	snapshot := h.dashboardService.GetSnapshot(c.Request.Context())
	response.OK(c, "Dashboard metrics retrieved successfully", snapshot)
}
