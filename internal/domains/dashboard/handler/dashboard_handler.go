package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"publishing-crm/internal/domains/dashboard"
	"publishing-crm/internal/shared/response"
	"publishing-crm/pkg/logger"
)

type DashboardHandler struct {
	service dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview handles GET /dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	period := dashboard.Period(c.DefaultQuery("period", "month"))
	if !period.Valid() {
		response.BadRequest(c, "invalid period")
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), period)
	if err != nil {
		logger.Error("dashboard overview failed", err)
		response.InternalServerError(c, "dashboard overview failed")
		return
	}

	response.Success(c, http.StatusOK, overview)
}

// MetricChange handles GET /dashboard/metrics/:metric
func (h *DashboardHandler) MetricChange(c *gin.Context) {
	metric := dashboard.Metric(c.Param("metric"))
	if !metric.Valid() {
		response.BadRequest(c, "invalid metric")
		return
	}
	period := dashboard.Period(c.DefaultQuery("period", "month"))
	if !period.Valid() {
		response.BadRequest(c, "invalid period")
		return
	}

	change, err := h.service.MetricChange(c.Request.Context(), metric, period)
	if err != nil {
		logger.Error("dashboard metric failed", err)
		response.InternalServerError(c, "dashboard metric failed")
		return
	}

	response.Success(c, http.StatusOK, change)
}
