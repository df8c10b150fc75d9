package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-crm/internal/domains/activity"
	"publishing-crm/internal/shared/response"
	"publishing-crm/pkg/logger"
)

type ActivityHandler struct {
	service activity.Service
}

func NewActivityHandler(svc activity.Service) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// List handles GET /activities — the cross-entity audit feed.
// Query params: type, action, from, to (RFC 3339 dates), limit, offset.
func (h *ActivityHandler) List(c *gin.Context) {
	filter := activity.Filter{
		TrackableType: c.Query("type"),
		Action:        activity.Action(c.Query("action")),
	}

	if filter.Action != "" && !filter.Action.Valid() {
		response.BadRequest(c, "unknown action "+string(filter.Action))
		return
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			response.BadRequest(c, "invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			response.BadRequest(c, "invalid to timestamp")
			return
		}
		filter.To = &t
	}

	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	activities, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("failed to list activities", err)
		response.InternalServerError(c, "failed to list activities")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, activities, &response.Meta{
		Limit: filter.Limit,
		Total: int(total),
	})
}

// ListForTrackable handles GET /activities/:type/:id — one entity's history.
func (h *ActivityHandler) ListForTrackable(c *gin.Context) {
	trackableType := c.Param("type")
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	activities, err := h.service.ListForTrackable(c.Request.Context(), trackableType, id, limit)
	if err != nil {
		logger.Error("failed to list activities", err)
		response.InternalServerError(c, "failed to list activities")
		return
	}

	response.Success(c, http.StatusOK, activities)
}
