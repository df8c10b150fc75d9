package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-crm/internal/domains/deal"
	"publishing-crm/internal/shared/response"
	"publishing-crm/internal/shared/validation"
	"publishing-crm/pkg/logger"
)

type DealHandler struct {
	service deal.Service
}

func NewDealHandler(svc deal.Service) *DealHandler {
	return &DealHandler{service: svc}
}

// Create handles POST /deals
func (h *DealHandler) Create(c *gin.Context) {
	var req deal.CreateDealRequest
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

// GetByID handles GET /deals/:id
func (h *DealHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, d)
}

// List handles GET /deals
func (h *DealHandler) List(c *gin.Context) {
	filter := deal.Filter{
		Status:   deal.Status(c.Query("status")),
		DealType: deal.Type(c.Query("deal_type")),
	}
	for param, target := range map[string]*uuid.UUID{
		"book_id":      &filter.BookID,
		"publisher_id": &filter.PublisherID,
		"agent_id":     &filter.AgentID,
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

	deals, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, deals, &response.Meta{
		Limit: filter.Limit,
		Total: int(total),
	})
}

// Update handles PUT /deals/:id
func (h *DealHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	var req deal.UpdateDealRequest
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

// Delete handles DELETE /deals/:id
func (h *DealHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Economics handles GET /deals/:id/economics
func (h *DealHandler) Economics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	econ, err := h.service.Economics(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, econ)
}

func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}

	status := deal.ToHTTPStatus(err)
	switch status {
	case 500:
		logger.Error("deal operation failed", err)
	case 404, 409:
		logger.Warn("deal operation refused", err)
	}
	response.ErrorResponse(c, status, deal.ToErrorCode(err), err.Error())
}
