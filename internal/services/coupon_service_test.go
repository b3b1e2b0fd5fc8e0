package services

import (
	"context"
	"errors"
	"testing"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"github.com/relationtrack/relationtrack-backend/internal/repositories/memory"
)

func newCouponFixture() (*CouponServiceImpl, *LedgerServiceImpl) {
	ledger := NewLedgerService(memory.NewPointRepository())
	return NewCouponService(memory.NewCouponRepository(), ledger), ledger
}

func TestRedeemCouponDebitsCreator(t *testing.T) {
	coupons, ledger := newCouponFixture()
	ctx := context.Background()

	coupon, err := coupons.CreateCoupon(ctx, &models.CreateCouponRequest{
		Title:     "Breakfast in bed",
		Points:    15,
		CreatedBy: "partner1",
	})
	if err != nil {
		t.Fatalf("CreateCoupon returned error: %v", err)
	}

	redeemed, err := coupons.RedeemCoupon(ctx, coupon.ID)
	if err != nil {
		t.Fatalf("RedeemCoupon returned error: %v", err)
	}
	if !redeemed.Redeemed || redeemed.RedeemedAt == nil {
		t.Error("RedeemCoupon did not mark the coupon redeemed")
	}

	total, _ := ledger.GetTotalPoints(ctx, "partner1")
	if total != -15 {
		t.Errorf("creator total after redemption = %d, want -15", total)
	}

	events, _ := ledger.GetPoints(ctx, "partner1")
	if len(events) != 1 {
		t.Fatalf("ledger has %d events, want 1", len(events))
	}
	if events[0].Reason != "Redeemed coupon: Breakfast in bed" {
		t.Errorf("debit reason = %q", events[0].Reason)
	}
}

func TestRedeemCouponTwice(t *testing.T) {
	coupons, ledger := newCouponFixture()
	ctx := context.Background()

	coupon, _ := coupons.CreateCoupon(ctx, &models.CreateCouponRequest{
		Title:     "Movie night",
		Points:    10,
		CreatedBy: "partner2",
	})

	if _, err := coupons.RedeemCoupon(ctx, coupon.ID); err != nil {
		t.Fatalf("first RedeemCoupon returned error: %v", err)
	}

	_, err := coupons.RedeemCoupon(ctx, coupon.ID)
	if !errors.Is(err, ErrAlreadyRedeemed) {
		t.Fatalf("second RedeemCoupon = %v, want ErrAlreadyRedeemed", err)
	}

	total, _ := ledger.GetTotalPoints(ctx, "partner2")
	if total != -10 {
		t.Errorf("total after failed re-redemption = %d, want -10", total)
	}
}

func TestRedeemCouponUnknownID(t *testing.T) {
	coupons, _ := newCouponFixture()

	_, err := coupons.RedeemCoupon(context.Background(), "missing")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("RedeemCoupon(missing) = %v, want ErrNotFound", err)
	}
}

func TestDeleteCouponRules(t *testing.T) {
	coupons, _ := newCouponFixture()
	ctx := context.Background()

	coupon, _ := coupons.CreateCoupon(ctx, &models.CreateCouponRequest{
		Title:     "Back rub",
		Points:    5,
		CreatedBy: "partner1",
	})

	// An unredeemed coupon is an outstanding promise
	err := coupons.DeleteCoupon(ctx, coupon.ID)
	if !errors.Is(err, ErrUnredeemedCoupon) {
		t.Fatalf("DeleteCoupon(unredeemed) = %v, want ErrUnredeemedCoupon", err)
	}

	if _, err := coupons.RedeemCoupon(ctx, coupon.ID); err != nil {
		t.Fatalf("RedeemCoupon returned error: %v", err)
	}
	if err := coupons.DeleteCoupon(ctx, coupon.ID); err != nil {
		t.Fatalf("DeleteCoupon(redeemed) returned error: %v", err)
	}

	remaining, _ := coupons.GetCoupons(ctx)
	if len(remaining) != 0 {
		t.Errorf("GetCoupons after delete returned %d coupons, want 0", len(remaining))
	}

	if err := coupons.DeleteCoupon(ctx, coupon.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("DeleteCoupon(deleted) = %v, want ErrNotFound", err)
	}
}

func TestRedeemCouponRevertsWhenDebitFails(t *testing.T) {
	couponRepo := memory.NewCouponRepository()
	coupons := NewCouponService(couponRepo, &failingLedger{})
	ctx := context.Background()

	coupon, err := coupons.CreateCoupon(ctx, &models.CreateCouponRequest{
		Title:     "Picnic",
		Points:    20,
		CreatedBy: "partner2",
	})
	if err != nil {
		t.Fatalf("CreateCoupon returned error: %v", err)
	}

	if _, err := coupons.RedeemCoupon(ctx, coupon.ID); err == nil {
		t.Fatal("RedeemCoupon succeeded despite ledger failure")
	}

	stored, err := couponRepo.FindByID(ctx, coupon.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.Redeemed || stored.RedeemedAt != nil {
		t.Error("coupon left redeemed without its matching debit")
	}
}
