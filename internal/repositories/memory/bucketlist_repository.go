package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure BucketlistRepository implements the interface
var _ repositories.BucketlistRepository = (*BucketlistRepository)(nil)

// BucketlistRepository stores bucketlist items in memory
type BucketlistRepository struct {
	mu    sync.RWMutex
	items map[string]*models.BucketlistItem
}

// NewBucketlistRepository creates a new in-memory BucketlistRepository
func NewBucketlistRepository() *BucketlistRepository {
	return &BucketlistRepository{
		items: make(map[string]*models.BucketlistItem),
	}
}

// Create inserts a new bucketlist item
func (r *BucketlistRepository) Create(ctx context.Context, item *models.BucketlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.NewString()
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

// FindByID finds a bucketlist item by its id
func (r *BucketlistRepository) FindByID(ctx context.Context, id string) (*models.BucketlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *item
	return &found, nil
}

// FindAll returns every bucketlist item
func (r *BucketlistRepository) FindAll(ctx context.Context) ([]*models.BucketlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.BucketlistItem, 0, len(r.items))
	for _, item := range r.items {
		found := *item
		items = append(items, &found)
	}
	return items, nil
}

// Update replaces the stored bucketlist item with the given one
func (r *BucketlistRepository) Update(ctx context.Context, item *models.BucketlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}
