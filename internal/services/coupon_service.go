package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure CouponServiceImpl implements CouponService
var _ CouponService = (*CouponServiceImpl)(nil)

// CouponServiceImpl handles coupon business logic
type CouponServiceImpl struct {
	couponRepo repositories.CouponRepository
	ledger     LedgerService
}

// NewCouponService creates a new CouponServiceImpl
func NewCouponService(couponRepo repositories.CouponRepository, ledger LedgerService) *CouponServiceImpl {
	return &CouponServiceImpl{
		couponRepo: couponRepo,
		ledger:     ledger,
	}
}

// GetCoupons lists every coupon
func (s *CouponServiceImpl) GetCoupons(ctx context.Context) ([]*models.Coupon, error) {
	coupons, err := s.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// CreateCoupon creates an unredeemed coupon
func (s *CouponServiceImpl) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	coupon := &models.Coupon{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		Redeemed:    false,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   time.Now(),
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	slog.Info("Coupon created", "id", coupon.ID, "title", coupon.Title, "points", coupon.Points, "createdBy", coupon.CreatedBy)
	return coupon, nil
}

// RedeemCoupon redeems a coupon once and debits its price from the creator,
// who pays in points when the other partner claims the reward. The state
// change and the debit are one logical unit: if the debit cannot be appended
// the redemption is reverted before the error propagates.
func (s *CouponServiceImpl) RedeemCoupon(ctx context.Context, id string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find coupon: %w", err)
	}

	if coupon.Redeemed {
		return nil, ErrAlreadyRedeemed
	}

	now := time.Now()
	coupon.Redeemed = true
	coupon.RedeemedAt = &now

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to redeem coupon: %w", err)
	}

	reason := fmt.Sprintf("Redeemed coupon: %s", coupon.Title)
	if _, err := s.ledger.AddPoints(ctx, coupon.CreatedBy, -coupon.Points, reason); err != nil {
		coupon.Redeemed = false
		coupon.RedeemedAt = nil
		if revertErr := s.couponRepo.Update(ctx, coupon); revertErr != nil {
			slog.Error("Failed to revert coupon redemption", "error", revertErr, "id", coupon.ID)
		}
		return nil, fmt.Errorf("failed to debit coupon points: %w", err)
	}

	slog.Info("Coupon redeemed", "id", coupon.ID, "points", coupon.Points, "createdBy", coupon.CreatedBy)
	return coupon, nil
}

// DeleteCoupon removes a redeemed coupon. An unredeemed coupon is an
// outstanding promise and cannot be deleted.
func (s *CouponServiceImpl) DeleteCoupon(ctx context.Context, id string) error {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find coupon: %w", err)
	}

	if !coupon.Redeemed {
		return ErrUnredeemedCoupon
	}

	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}

	slog.Info("Coupon deleted", "id", id)
	return nil
}
