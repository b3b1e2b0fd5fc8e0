package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure GameServiceImpl implements GameService
var _ GameService = (*GameServiceImpl)(nil)

// GameServiceImpl handles the truth/dare game. Draws are stateless: nothing
// is persisted between draws except the ledger debit.
type GameServiceImpl struct {
	challengeRepo repositories.ChallengeRepository
	ledger        LedgerService
}

// NewGameService creates a new GameServiceImpl
func NewGameService(challengeRepo repositories.ChallengeRepository, ledger LedgerService) *GameServiceImpl {
	return &GameServiceImpl{
		challengeRepo: challengeRepo,
		ledger:        ledger,
	}
}

// GetChallenges lists challenges of one mode; intensity <= 0 lists all
// intensities
func (s *GameServiceImpl) GetChallenges(ctx context.Context, mode string, intensity int) ([]*models.Challenge, error) {
	challenges, err := s.challengeRepo.FindByMode(ctx, mode, intensity)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	return challenges, nil
}

// CreateChallenge inserts a challenge with no economy side effect. A zero
// cost takes the mode's default: 5 for truths, 10 for dares.
func (s *GameServiceImpl) CreateChallenge(ctx context.Context, mode string, req *models.CreateChallengeRequest) (*models.Challenge, error) {
	cost := req.Cost
	if cost == 0 {
		if mode == models.ModeDare {
			cost = models.DefaultDareCost
		} else {
			cost = models.DefaultTruthCost
		}
	}

	challenge := &models.Challenge{
		Mode:      mode,
		Prompt:    req.Prompt,
		Intensity: req.Intensity,
		Cost:      cost,
		CreatedBy: req.CreatedBy,
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	slog.Info("Challenge created", "id", challenge.ID, "mode", challenge.Mode, "intensity", challenge.Intensity, "cost", challenge.Cost)
	return challenge, nil
}

// Draw reads the partner's balance, keeps the candidates they can afford,
// and picks one uniformly at random. The winning challenge's cost is debited
// from the partner before it is returned. With no affordable candidate the
// draw fails with ErrInsufficientPoints and the ledger is untouched.
func (s *GameServiceImpl) Draw(ctx context.Context, partner, mode string, intensity int) (*models.Challenge, error) {
	balance, err := s.ledger.GetTotalPoints(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	candidates, err := s.challengeRepo.FindByMode(ctx, mode, intensity)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	affordable := make([]*models.Challenge, 0, len(candidates))
	for _, challenge := range candidates {
		if challenge.Cost <= balance {
			affordable = append(affordable, challenge)
		}
	}

	if len(affordable) == 0 {
		slog.Warn("No affordable challenge", "partner", partner, "mode", mode, "intensity", intensity, "balance", balance)
		return nil, ErrInsufficientPoints
	}

	selected := affordable[rand.Intn(len(affordable))]

	reason := fmt.Sprintf("Spent on %s", mode)
	if _, err := s.ledger.AddPoints(ctx, partner, -selected.Cost, reason); err != nil {
		return nil, fmt.Errorf("failed to debit draw cost: %w", err)
	}

	slog.Info("Challenge drawn", "id", selected.ID, "mode", mode, "cost", selected.Cost, "partner", partner)
	return selected, nil
}
