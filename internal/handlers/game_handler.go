package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

// GameHandler handles truth/dare game HTTP requests
type GameHandler struct {
	gameService services.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetTruths handles GET /api/game/truths
func (h *GameHandler) GetTruths(c *gin.Context) {
	h.getChallenges(c, models.ModeTruth)
}

// GetDares handles GET /api/game/dares
func (h *GameHandler) GetDares(c *gin.Context) {
	h.getChallenges(c, models.ModeDare)
}

func (h *GameHandler) getChallenges(c *gin.Context, mode string) {
	intensity, _ := strconv.Atoi(c.Query("intensity"))

	challenges, err := h.gameService.GetChallenges(c, mode, intensity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get challenges: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// CreateTruth handles POST /api/game/truths
func (h *GameHandler) CreateTruth(c *gin.Context) {
	h.createChallenge(c, models.ModeTruth)
}

// CreateDare handles POST /api/game/dares
func (h *GameHandler) CreateDare(c *gin.Context) {
	h.createChallenge(c, models.ModeDare)
}

func (h *GameHandler) createChallenge(c *gin.Context, mode string) {
	var req models.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge data: " + err.Error()})
		return
	}

	challenge, err := h.gameService.CreateChallenge(c, mode, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// Draw handles POST /api/game/draw
func (h *GameHandler) Draw(c *gin.Context) {
	var req models.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draw data: " + err.Error()})
		return
	}

	challenge, err := h.gameService.Draw(c, req.Partner, req.Mode, req.Intensity)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientPoints) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Not enough points for any challenge"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to draw challenge: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, challenge)
}
