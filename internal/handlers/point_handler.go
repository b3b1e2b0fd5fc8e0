package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

// PointHandler handles points ledger HTTP requests
type PointHandler struct {
	ledgerService services.LedgerService
}

// NewPointHandler creates a new PointHandler
func NewPointHandler(ledgerService services.LedgerService) *PointHandler {
	return &PointHandler{
		ledgerService: ledgerService,
	}
}

// GetPoints handles GET /api/points
func (h *PointHandler) GetPoints(c *gin.Context) {
	partner := c.Query("partner")

	events, err := h.ledgerService.GetPoints(c, partner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get points: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetTotalPoints handles GET /api/points/total
func (h *PointHandler) GetTotalPoints(c *gin.Context) {
	partner := c.Query("partner")
	if partner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner parameter is required"})
		return
	}

	total, err := h.ledgerService.GetTotalPoints(c, partner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to total points: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.TotalPointsResponse{Total: total})
}

// AddPoints handles POST /api/points
func (h *PointHandler) AddPoints(c *gin.Context) {
	var req models.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid points data: " + err.Error()})
		return
	}

	event, err := h.ledgerService.AddPoints(c, req.Partner, req.Amount, req.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add points: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}
