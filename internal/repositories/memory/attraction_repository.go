package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure AttractionRepository implements the interface
var _ repositories.AttractionRepository = (*AttractionRepository)(nil)

// AttractionRepository stores attractions in memory
type AttractionRepository struct {
	mu          sync.RWMutex
	attractions map[string]*models.Attraction
}

// NewAttractionRepository creates a new in-memory AttractionRepository
func NewAttractionRepository() *AttractionRepository {
	return &AttractionRepository{
		attractions: make(map[string]*models.Attraction),
	}
}

// Create inserts a new attraction
func (r *AttractionRepository) Create(ctx context.Context, attraction *models.Attraction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attraction.ID = uuid.NewString()
	stored := *attraction
	r.attractions[attraction.ID] = &stored
	return nil
}

// FindAll returns every attraction
func (r *AttractionRepository) FindAll(ctx context.Context) ([]*models.Attraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attractions := make([]*models.Attraction, 0, len(r.attractions))
	for _, attraction := range r.attractions {
		found := *attraction
		attractions = append(attractions, &found)
	}
	return attractions, nil
}
