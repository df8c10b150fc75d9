package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-crm/internal/domains/prospect"
	"publishing-crm/internal/shared/response"
	"publishing-crm/internal/shared/validation"
	"publishing-crm/pkg/logger"
)

type ProspectHandler struct {
	service prospect.Service
}

func NewProspectHandler(svc prospect.Service) *ProspectHandler {
	return &ProspectHandler{service: svc}
}

// Create handles POST /prospects
func (h *ProspectHandler) Create(c *gin.Context) {
	var req prospect.CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /prospects/:id
func (h *ProspectHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// List handles GET /prospects
func (h *ProspectHandler) List(c *gin.Context) {
	filter := prospect.Filter{
		Stage:      prospect.Stage(c.Query("stage")),
		Source:     prospect.Source(c.Query("source")),
		FollowUp:   prospect.FollowUp(c.Query("follow_up")),
		Query:      c.Query("q"),
		Unassigned: c.Query("unassigned") == "true",
	}
	if agentID := c.Query("agent_id"); agentID != "" {
		id, err := uuid.Parse(agentID)
		if err != nil {
			response.BadRequest(c, "invalid agent id")
			return
		}
		filter.AgentID = id
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	prospects, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, prospects, &response.Meta{
		Limit: filter.Limit,
		Total: int(total),
	})
}

// Update handles PUT /prospects/:id
func (h *ProspectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	var req prospect.UpdateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /prospects/:id
func (h *ProspectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Transition handles POST /prospects/:id/transition
func (h *ProspectHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	var req prospect.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.TransitionTo(c.Request.Context(), id, prospect.Stage(req.Stage))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Convert handles POST /prospects/:id/convert
func (h *ProspectHandler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	created, err := h.service.ConvertToAuthor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Decline handles POST /prospects/:id/decline
func (h *ProspectHandler) Decline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid prospect id")
		return
	}

	var req prospect.DeclineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Decline(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	status := prospect.ToHTTPStatus(err)
	switch status {
	case 500:
		logger.Error("prospect operation failed", err)
	case 404, 409:
		logger.Warn("prospect operation refused", err)
	}
	response.ErrorResponse(c, status, prospect.ToErrorCode(err), err.Error())
}
