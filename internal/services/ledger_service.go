package services

import (
	"context"
	"fmt"
	"time"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure LedgerServiceImpl implements LedgerService
var _ LedgerService = (*LedgerServiceImpl)(nil)

// LedgerServiceImpl owns the append-only points ledger
type LedgerServiceImpl struct {
	pointRepo repositories.PointRepository
}

// NewLedgerService creates a new LedgerServiceImpl
func NewLedgerService(pointRepo repositories.PointRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		pointRepo: pointRepo,
	}
}

// AddPoints appends a ledger event. Amounts are taken as-is: credits are
// positive, debits negative, and balances are allowed to go negative.
func (s *LedgerServiceImpl) AddPoints(ctx context.Context, partner string, amount int, reason string) (*models.PointEvent, error) {
	event := &models.PointEvent{
		Amount:    amount,
		Reason:    reason,
		Partner:   partner,
		CreatedAt: time.Now(),
	}

	if err := s.pointRepo.Create(ctx, event); err != nil {
		slog.Error("Failed to append ledger event", "error", err, "partner", partner, "amount", amount)
		return nil, fmt.Errorf("failed to append ledger event: %w", err)
	}

	slog.Info("Ledger event appended", "partner", partner, "amount", amount, "reason", reason)
	return event, nil
}

// GetPoints lists ledger events, all partners when partner is empty
func (s *LedgerServiceImpl) GetPoints(ctx context.Context, partner string) ([]*models.PointEvent, error) {
	events, err := s.pointRepo.FindByPartner(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger events: %w", err)
	}
	return events, nil
}

// GetTotalPoints derives a partner's balance by summing their events. A
// partner with no events has a balance of 0.
func (s *LedgerServiceImpl) GetTotalPoints(ctx context.Context, partner string) (int, error) {
	total, err := s.pointRepo.TotalByPartner(ctx, partner)
	if err != nil {
		return 0, fmt.Errorf("failed to total points: %w", err)
	}
	return total, nil
}
