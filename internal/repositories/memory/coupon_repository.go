package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure CouponRepository implements the interface
var _ repositories.CouponRepository = (*CouponRepository)(nil)

// CouponRepository stores coupons in memory
type CouponRepository struct {
	mu      sync.RWMutex
	coupons map[string]*models.Coupon
}

// NewCouponRepository creates a new in-memory CouponRepository
func NewCouponRepository() *CouponRepository {
	return &CouponRepository{
		coupons: make(map[string]*models.Coupon),
	}
}

// Create inserts a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon.ID = uuid.NewString()
	stored := *coupon
	r.coupons[coupon.ID] = &stored
	return nil
}

// FindByID finds a coupon by its id
func (r *CouponRepository) FindByID(ctx context.Context, id string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.coupons[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *coupon
	return &found, nil
}

// FindAll returns every coupon
func (r *CouponRepository) FindAll(ctx context.Context) ([]*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupons := make([]*models.Coupon, 0, len(r.coupons))
	for _, coupon := range r.coupons {
		found := *coupon
		coupons = append(coupons, &found)
	}
	return coupons, nil
}

// Update replaces the stored coupon with the given one
func (r *CouponRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[coupon.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *coupon
	r.coupons[coupon.ID] = &stored
	return nil
}

// Delete removes a coupon by its id
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.coupons, id)
	return nil
}
