package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure BucketlistServiceImpl implements BucketlistService
var _ BucketlistService = (*BucketlistServiceImpl)(nil)

// BucketlistServiceImpl handles bucketlist business logic. The bucketlist
// sits outside the points economy, so completing an item never touches the
// ledger.
type BucketlistServiceImpl struct {
	bucketlistRepo repositories.BucketlistRepository
}

// NewBucketlistService creates a new BucketlistServiceImpl
func NewBucketlistService(bucketlistRepo repositories.BucketlistRepository) *BucketlistServiceImpl {
	return &BucketlistServiceImpl{
		bucketlistRepo: bucketlistRepo,
	}
}

// GetBucketlist lists every bucketlist item
func (s *BucketlistServiceImpl) GetBucketlist(ctx context.Context) ([]*models.BucketlistItem, error) {
	items, err := s.bucketlistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bucketlist: %w", err)
	}
	return items, nil
}

// CreateItem creates a pending bucketlist item
func (s *BucketlistServiceImpl) CreateItem(ctx context.Context, req *models.CreateBucketlistRequest) (*models.BucketlistItem, error) {
	item := &models.BucketlistItem{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   time.Now(),
	}

	if err := s.bucketlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create bucketlist item: %w", err)
	}

	slog.Info("Bucketlist item created", "id", item.ID, "title", item.Title)
	return item, nil
}

// CompleteItem marks a bucketlist item completed
func (s *BucketlistServiceImpl) CompleteItem(ctx context.Context, id string) (*models.BucketlistItem, error) {
	item, err := s.bucketlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find bucketlist item: %w", err)
	}

	now := time.Now()
	item.Completed = true
	item.CompletedAt = &now

	if err := s.bucketlistRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to complete bucketlist item: %w", err)
	}

	slog.Info("Bucketlist item completed", "id", item.ID)
	return item, nil
}
