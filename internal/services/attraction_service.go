package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AttractionServiceImpl implements AttractionService
var _ AttractionService = (*AttractionServiceImpl)(nil)

// AttractionServiceImpl handles attraction business logic
type AttractionServiceImpl struct {
	attractionRepo repositories.AttractionRepository
}

// NewAttractionService creates a new AttractionServiceImpl
func NewAttractionService(attractionRepo repositories.AttractionRepository) *AttractionServiceImpl {
	return &AttractionServiceImpl{
		attractionRepo: attractionRepo,
	}
}

// GetAttractions lists every attraction
func (s *AttractionServiceImpl) GetAttractions(ctx context.Context) ([]*models.Attraction, error) {
	attractions, err := s.attractionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attractions: %w", err)
	}
	return attractions, nil
}

// CreateAttraction inserts a new attraction
func (s *AttractionServiceImpl) CreateAttraction(ctx context.Context, req *models.CreateAttractionRequest) (*models.Attraction, error) {
	attraction := &models.Attraction{
		Detail:    req.Detail,
		Type:      req.Type,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now(),
	}

	if err := s.attractionRepo.Create(ctx, attraction); err != nil {
		return nil, fmt.Errorf("failed to create attraction: %w", err)
	}

	slog.Info("Attraction created", "id", attraction.ID, "type", attraction.Type)
	return attraction, nil
}
