package repositories

import (
	"context"
	"errors"

	"github.com/relationtrack/relationtrack-backend/internal/models"
)

// ErrNotFound is returned by every repository when the referenced id is not
// in the collection. Both storage drivers report missing ids with this error
// so the services behave identically on either backend.
var ErrNotFound = errors.New("not found")

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAll(ctx context.Context) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

// ChallengeRepository defines the interface for truth/dare data operations.
// intensity <= 0 means no intensity filter.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	FindByMode(ctx context.Context, mode string, intensity int) ([]*models.Challenge, error)
}

// PointRepository defines the interface for the append-only points ledger.
// Events are inserted and read, never updated or deleted.
type PointRepository interface {
	Create(ctx context.Context, event *models.PointEvent) error
	FindByPartner(ctx context.Context, partner string) ([]*models.PointEvent, error)
	TotalByPartner(ctx context.Context, partner string) (int, error)
}

// BucketlistRepository defines the interface for bucketlist data operations
type BucketlistRepository interface {
	Create(ctx context.Context, item *models.BucketlistItem) error
	FindByID(ctx context.Context, id string) (*models.BucketlistItem, error)
	FindAll(ctx context.Context) ([]*models.BucketlistItem, error)
	Update(ctx context.Context, item *models.BucketlistItem) error
}

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	FindByID(ctx context.Context, id string) (*models.Coupon, error)
	FindAll(ctx context.Context) ([]*models.Coupon, error)
	Update(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id string) error
}

// AttractionRepository defines the interface for attraction data operations
type AttractionRepository interface {
	Create(ctx context.Context, attraction *models.Attraction) error
	FindAll(ctx context.Context) ([]*models.Attraction, error)
}
