package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure PointRepository implements the interface
var _ repositories.PointRepository = (*PointRepository)(nil)

// PointRepository stores the points ledger in memory. The ledger is
// append-only, so events live in a slice and listings come back in insertion
// order.
type PointRepository struct {
	mu     sync.RWMutex
	events []*models.PointEvent
}

// NewPointRepository creates a new in-memory PointRepository
func NewPointRepository() *PointRepository {
	return &PointRepository{}
}

// Create appends a new ledger event
func (r *PointRepository) Create(ctx context.Context, event *models.PointEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = uuid.NewString()
	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

// FindByPartner returns ledger events in insertion order, filtered to one
// partner when partner is non-empty.
func (r *PointRepository) FindByPartner(ctx context.Context, partner string) ([]*models.PointEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*models.PointEvent, 0, len(r.events))
	for _, event := range r.events {
		if partner != "" && event.Partner != partner {
			continue
		}
		found := *event
		events = append(events, &found)
	}
	return events, nil
}

// TotalByPartner sums the amounts of a partner's ledger events. A partner
// with no events totals 0.
func (r *PointRepository) TotalByPartner(ctx context.Context, partner string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, event := range r.events {
		if event.Partner == partner {
			total += event.Amount
		}
	}
	return total, nil
}
