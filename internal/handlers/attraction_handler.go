package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

// AttractionHandler handles attraction-related HTTP requests
type AttractionHandler struct {
	attractionService services.AttractionService
}

// NewAttractionHandler creates a new AttractionHandler
func NewAttractionHandler(attractionService services.AttractionService) *AttractionHandler {
	return &AttractionHandler{
		attractionService: attractionService,
	}
}

// GetAttractions handles GET /api/attractions
func (h *AttractionHandler) GetAttractions(c *gin.Context) {
	attractions, err := h.attractionService.GetAttractions(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get attractions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, attractions)
}

// CreateAttraction handles POST /api/attractions
func (h *AttractionHandler) CreateAttraction(c *gin.Context) {
	var req models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attraction data: " + err.Error()})
		return
	}

	attraction, err := h.attractionService.CreateAttraction(c, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attraction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, attraction)
}
