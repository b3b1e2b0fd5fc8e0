package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

func TestCouponRepositoryLifecycle(t *testing.T) {
	repo := NewCouponRepository()
	ctx := context.Background()

	coupon := &models.Coupon{Title: "Breakfast in bed", Points: 15, CreatedBy: "partner1"}
	if err := repo.Create(ctx, coupon); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, coupon.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Title != coupon.Title {
		t.Errorf("FindByID title = %q, want %q", found.Title, coupon.Title)
	}

	found.Redeemed = true
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	updated, err := repo.FindByID(ctx, coupon.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !updated.Redeemed {
		t.Error("Update did not persist redeemed flag")
	}

	if err := repo.Delete(ctx, coupon.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(ctx, coupon.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrNotFound", err)
	}
}

func TestCouponRepositoryUnknownID(t *testing.T) {
	repo := NewCouponRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("FindByID(missing) = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, &models.Coupon{ID: "missing"}); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Update(missing) = %v, want ErrNotFound", err)
	}
}

func TestCouponRepositoryCopiesOnRead(t *testing.T) {
	repo := NewCouponRepository()
	ctx := context.Background()

	coupon := &models.Coupon{Title: "Movie night", Points: 10, CreatedBy: "partner2"}
	if err := repo.Create(ctx, coupon); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, _ := repo.FindByID(ctx, coupon.ID)
	found.Redeemed = true

	again, _ := repo.FindByID(ctx, coupon.ID)
	if again.Redeemed {
		t.Error("mutating a read result leaked into the store")
	}
}
