package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-crm/internal/domains/note"
	"publishing-crm/internal/shared/response"
	"publishing-crm/internal/shared/validation"
	"publishing-crm/pkg/logger"
)

type NoteHandler struct {
	service note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler {
	return &NoteHandler{service: svc}
}

// Create handles POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req note.CreateNoteRequest
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

// GetByID handles GET /notes/:id
func (h *NoteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid note id")
		return
	}

	n, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, n)
}

// List handles GET /notes
func (h *NoteHandler) List(c *gin.Context) {
	filter := note.Filter{
		NotableType: c.Query("notable_type"),
	}
	if notableID := c.Query("notable_id"); notableID != "" {
		id, err := uuid.Parse(notableID)
		if err != nil {
			response.BadRequest(c, "invalid notable id")
			return
		}
		filter.NotableID = id
	}
	if pinned := c.Query("pinned"); pinned != "" {
		val := pinned == "true"
		filter.Pinned = &val
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	notes, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, notes, &response.Meta{
		Limit: filter.Limit,
		Total: int(total),
	})
}

// Update handles PUT /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid note id")
		return
	}

	var req note.UpdateNoteRequest
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

// Delete handles DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid note id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	status := note.ToHTTPStatus(err)
	switch status {
	case 500:
		logger.Error("note operation failed", err)
	case 404, 409:
		logger.Warn("note operation refused", err)
	}
	response.ErrorResponse(c, status, note.ToErrorCode(err), err.Error())
}
