package handler

import (
	"context"
	"net/http"
	"strconv"

	"locations-api/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// SearchHandler handles location autocomplete requests
type SearchHandler struct {
	service SearchService
}

// Service interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /locations/search requests
//
//	@Summary	Autocomplete locations by partial name
//	@Produce	json
//	@Param		q		query		string	true	"Partial location name"
//	@Param		limit	query		int		false	"Max results (default 20, capped at 50)"
//	@Success	200		{array}		models.SearchResult
//	@Failure	400		{object}	map[string]string
//	@Router		/locations/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' parameter"})
			return
		}
		limit = n
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results, err := h.service.Search(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, results)
}
