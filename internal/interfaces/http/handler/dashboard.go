package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/backend/internal/application/dashboard"
)

// DashboardHandler serves the read-only pipeline and deployment dashboards
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// PipelineOverview returns candidate counts per team view
func (h *DashboardHandler) PipelineOverview(c *gin.Context) {
	overview, err := h.dashboardService.PipelineOverview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overview)
}

// TeamViewStats returns the stage breakdown for one team view
func (h *DashboardHandler) TeamViewStats(c *gin.Context) {
	stats, err := h.dashboardService.TeamViewStats(c.Request.Context(), c.Param("view"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// LDStats returns the L&D decision breakdown
func (h *DashboardHandler) LDStats(c *gin.Context) {
	stats, err := h.dashboardService.LDStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// DeploymentOverview returns deployment ledger counts per tab
func (h *DashboardHandler) DeploymentOverview(c *gin.Context) {
	overview, err := h.dashboardService.DeploymentOverview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overview)
}
