package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"github.com/relationtrack/relationtrack-backend/internal/services"
)

// CouponHandler handles coupon-related HTTP requests
type CouponHandler struct {
	couponService services.CouponService
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
	}
}

// GetCoupons handles GET /api/coupons
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	coupons, err := h.couponService.GetCoupons(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coupons: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// CreateCoupon handles POST /api/coupons
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req models.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon data: " + err.Error()})
		return
	}

	coupon, err := h.couponService.CreateCoupon(c, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// RedeemCoupon handles POST /api/coupons/:id/redeem
func (h *CouponHandler) RedeemCoupon(c *gin.Context) {
	coupon, err := h.couponService.RedeemCoupon(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if errors.Is(err, services.ErrAlreadyRedeemed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon already redeemed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem coupon: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon handles DELETE /api/coupons/:id
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.couponService.DeleteCoupon(c, c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if errors.Is(err, services.ErrUnredeemedCoupon) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete unredeemed coupon"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
