package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

// BucketlistHandler handles bucketlist-related HTTP requests
type BucketlistHandler struct {
	bucketlistService services.BucketlistService
}

// NewBucketlistHandler creates a new BucketlistHandler
func NewBucketlistHandler(bucketlistService services.BucketlistService) *BucketlistHandler {
	return &BucketlistHandler{
		bucketlistService: bucketlistService,
	}
}

// GetBucketlist handles GET /api/bucketlist
func (h *BucketlistHandler) GetBucketlist(c *gin.Context) {
	items, err := h.bucketlistService.GetBucketlist(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bucketlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /api/bucketlist
func (h *BucketlistHandler) CreateItem(c *gin.Context) {
	var req models.CreateBucketlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bucketlist data: " + err.Error()})
		return
	}

	item, err := h.bucketlistService.CreateItem(c, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bucketlist item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// CompleteItem handles POST /api/bucketlist/:id/complete
func (h *BucketlistHandler) CompleteItem(c *gin.Context) {
	item, err := h.bucketlistService.CompleteItem(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucketlist item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete bucketlist item: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
