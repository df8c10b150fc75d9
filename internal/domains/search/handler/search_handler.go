package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"publishing-crm/internal/domains/search"
	"publishing-crm/internal/shared/response"
	"publishing-crm/pkg/logger"
)

type SearchHandler struct {
	service search.Service
}

func NewSearchHandler(svc search.Service) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /search
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	entityType := c.Query("type")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	if entityType != "" && !search.ValidEntityType(entityType) {
		response.BadRequest(c, "invalid entity type")
		return
	}

	if c.Query("grouped") == "true" {
		grouped, err := h.service.GroupedResults(c.Request.Context(), query, entityType, limit)
		if err != nil {
			logger.Error("search failed", err)
			response.InternalServerError(c, "search failed")
			return
		}
		response.Success(c, http.StatusOK, grouped)
		return
	}

	results, err := h.service.Results(c.Request.Context(), query, entityType, limit)
	if err != nil {
		logger.Error("search failed", err)
		response.InternalServerError(c, "search failed")
		return
	}
	response.Success(c, http.StatusOK, results)
}
