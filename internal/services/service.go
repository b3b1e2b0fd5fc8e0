package services

import (
	"context"

	"github.com/relationtrack/relationtrack-backend/internal/models"
)

// LedgerService defines the interface for points ledger operations. The
// ledger is the source of truth for balances: totals are derived by summing
// events, never cached.
type LedgerService interface {
	// AddPoints appends a ledger event for a partner and returns it
	AddPoints(ctx context.Context, partner string, amount int, reason string) (*models.PointEvent, error)

	// GetPoints lists ledger events, all partners when partner is empty
	GetPoints(ctx context.Context, partner string) ([]*models.PointEvent, error)

	// GetTotalPoints derives a partner's current balance
	GetTotalPoints(ctx context.Context, partner string) (int, error)
}

// TaskService defines the interface for task operations
type TaskService interface {
	// GetTasks lists every task
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// CreateTask creates a pending task
	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)

	// CompleteTask marks a task completed and credits the assignee once.
	// Completing an already-completed task is a no-op.
	CompleteTask(ctx context.Context, id string) (*models.Task, error)

	// DeleteTask removes a task; any credit already issued stays on the ledger
	DeleteTask(ctx context.Context, id string) error
}

// CouponService defines the interface for coupon operations
type CouponService interface {
	// GetCoupons lists every coupon
	GetCoupons(ctx context.Context) ([]*models.Coupon, error)

	// CreateCoupon creates an unredeemed coupon
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)

	// RedeemCoupon redeems a coupon once and debits its creator
	RedeemCoupon(ctx context.Context, id string) (*models.Coupon, error)

	// DeleteCoupon removes a coupon; only redeemed coupons may be deleted
	DeleteCoupon(ctx context.Context, id string) error
}

// GameService defines the interface for the truth/dare game
type GameService interface {
	// GetChallenges lists challenges of one mode; intensity <= 0 lists all
	// intensities
	GetChallenges(ctx context.Context, mode string, intensity int) ([]*models.Challenge, error)

	// CreateChallenge inserts a challenge of the given mode, applying the
	// mode's cost default when the request omits a cost
	CreateChallenge(ctx context.Context, mode string, req *models.CreateChallengeRequest) (*models.Challenge, error)

	// Draw picks a random affordable challenge for the partner and debits
	// its cost
	Draw(ctx context.Context, partner, mode string, intensity int) (*models.Challenge, error)
}

// BucketlistService defines the interface for bucketlist operations
type BucketlistService interface {
	GetBucketlist(ctx context.Context) ([]*models.BucketlistItem, error)
	CreateItem(ctx context.Context, req *models.CreateBucketlistRequest) (*models.BucketlistItem, error)
	CompleteItem(ctx context.Context, id string) (*models.BucketlistItem, error)
}

// AttractionService defines the interface for attraction operations
type AttractionService interface {
	GetAttractions(ctx context.Context) ([]*models.Attraction, error)
	CreateAttraction(ctx context.Context, req *models.CreateAttractionRequest) (*models.Attraction, error)
}
