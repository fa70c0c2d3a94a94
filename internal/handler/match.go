package handler

import (
	"context"
	"net/http"

	"locations-api/internal/models"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles place-to-location matching requests
type MatchHandler struct {
	service MatchService
}

// Service interface for dependency injection
type MatchService interface {
	Match(ctx context.Context, place models.NormalizedPlace) (models.MatchResult, error)
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(svc MatchService) *MatchHandler {
	return &MatchHandler{service: svc}
}

// Match handles POST /locations/match requests
//
//	@Summary	Resolve a provider place against the location tree
//	@Accept		json
//	@Produce	json
//	@Param		place	body		models.NormalizedPlace	true	"Normalized place"
//	@Success	200		{object}	models.MatchResult
//	@Failure	400		{object}	map[string]string
//	@Router		/locations/match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	var place models.NormalizedPlace
	if err := c.ShouldBindJSON(&place); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Match(c.Request.Context(), place)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
