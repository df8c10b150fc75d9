package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-crm/internal/domains/representation"
	"publishing-crm/internal/shared/response"
	"publishing-crm/internal/shared/validation"
	"publishing-crm/pkg/logger"
)

type RepresentationHandler struct {
	service representation.Service
}

func NewRepresentationHandler(svc representation.Service) *RepresentationHandler {
	return &RepresentationHandler{service: svc}
}

// Create handles POST /representations
func (h *RepresentationHandler) Create(c *gin.Context) {
	var req representation.CreateRepresentationRequest
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

// GetByID handles GET /representations/:id
func (h *RepresentationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid representation id")
		return
	}

	rep, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rep)
}

// List handles GET /representations
func (h *RepresentationHandler) List(c *gin.Context) {
	filter := representation.Filter{
		Status: representation.Status(c.Query("status")),
	}
	for param, target := range map[string]*uuid.UUID{
		"author_id": &filter.AuthorID,
		"agent_id":  &filter.AgentID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				response.BadRequest(c, "invalid "+param)
				return
			}
			*target = id
		}
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	reps, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reps, &response.Meta{
		Limit: filter.Limit,
		Total: int(total),
	})
}

// Update handles PUT /representations/:id
func (h *RepresentationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid representation id")
		return
	}

	var req representation.UpdateRepresentationRequest
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

// Delete handles DELETE /representations/:id
func (h *RepresentationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid representation id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// End handles POST /representations/:id/end
func (h *RepresentationHandler) End(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid representation id")
		return
	}

	ended, err := h.service.End(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ended)
}

func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	status := representation.ToHTTPStatus(err)
	switch status {
	case 500:
		logger.Error("representation operation failed", err)
	case 404, 409:
		logger.Warn("representation operation refused", err)
	}
	response.ErrorResponse(c, status, representation.ToErrorCode(err), err.Error())
}
