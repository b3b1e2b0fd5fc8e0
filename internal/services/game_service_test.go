package services

import (
	"context"
	"errors"
	"testing"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories/memory"
)

func newGameFixture() (*GameServiceImpl, *LedgerServiceImpl) {
	ledger := NewLedgerService(memory.NewPointRepository())
	return NewGameService(memory.NewChallengeRepository(), ledger), ledger
}

func TestCreateChallengeCostDefaults(t *testing.T) {
	game, _ := newGameFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		mode     string
		cost     int
		wantCost int
	}{
		{"truth default", models.ModeTruth, 0, models.DefaultTruthCost},
		{"dare default", models.ModeDare, 0, models.DefaultDareCost},
		{"explicit cost kept", models.ModeTruth, 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			challenge, err := game.CreateChallenge(ctx, tt.mode, &models.CreateChallengeRequest{
				Prompt:    "Tell me something new",
				Intensity: 2,
				Cost:      tt.cost,
				CreatedBy: "partner1",
			})
			if err != nil {
				t.Fatalf("CreateChallenge returned error: %v", err)
			}
			if challenge.Cost != tt.wantCost {
				t.Errorf("cost = %d, want %d", challenge.Cost, tt.wantCost)
			}
			if challenge.Mode != tt.mode {
				t.Errorf("mode = %q, want %q", challenge.Mode, tt.mode)
			}
		})
	}
}

func TestDrawInsufficientPoints(t *testing.T) {
	game, ledger := newGameFixture()
	ctx := context.Background()

	// Cheapest seeded truth costs 5; a balance of 4 affords nothing
	if _, err := ledger.AddPoints(ctx, "partner1", 4, "starter"); err != nil {
		t.Fatalf("AddPoints returned error: %v", err)
	}

	_, err := game.Draw(ctx, "partner1", models.ModeTruth, 0)
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("Draw = %v, want ErrInsufficientPoints", err)
	}

	total, _ := ledger.GetTotalPoints(ctx, "partner1")
	if total != 4 {
		t.Errorf("total after failed draw = %d, want unchanged 4", total)
	}
}

func TestDrawDebitsSelectedCost(t *testing.T) {
	game, ledger := newGameFixture()
	ctx := context.Background()

	if _, err := ledger.AddPoints(ctx, "partner2", 12, "starter"); err != nil {
		t.Fatalf("AddPoints returned error: %v", err)
	}

	// Seeded truths cost 5, 5, 10, 15, 20; only the first three are affordable
	challenge, err := game.Draw(ctx, "partner2", models.ModeTruth, 0)
	if err != nil {
		t.Fatalf("Draw returned error: %v", err)
	}
	if challenge.Cost > 12 {
		t.Errorf("drew unaffordable challenge costing %d with balance 12", challenge.Cost)
	}
	if challenge.Mode != models.ModeTruth {
		t.Errorf("drew mode %q, want truth", challenge.Mode)
	}

	total, _ := ledger.GetTotalPoints(ctx, "partner2")
	if total != 12-challenge.Cost {
		t.Errorf("total after draw = %d, want %d", total, 12-challenge.Cost)
	}
}

func TestDrawHonorsIntensityFilter(t *testing.T) {
	game, ledger := newGameFixture()
	ctx := context.Background()

	// Enough to afford every draw in the loop
	if _, err := ledger.AddPoints(ctx, "partner1", 1000, "starter"); err != nil {
		t.Fatalf("AddPoints returned error: %v", err)
	}

	for i := 0; i < 10; i++ {
		challenge, err := game.Draw(ctx, "partner1", models.ModeDare, 3)
		if err != nil {
			t.Fatalf("Draw returned error: %v", err)
		}
		if challenge.Intensity != 3 {
			t.Fatalf("drew intensity %d with filter 3", challenge.Intensity)
		}
	}
}

func TestDrawSelectsFromAffordableSetOnly(t *testing.T) {
	// Repeated draws at a balance that affords only the cheapest dare must
	// always land on it.
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		game, ledger := newGameFixture()
		if _, err := ledger.AddPoints(ctx, "partner1", 10, "starter"); err != nil {
			t.Fatalf("AddPoints returned error: %v", err)
		}

		challenge, err := game.Draw(ctx, "partner1", models.ModeDare, 0)
		if err != nil {
			t.Fatalf("Draw returned error: %v", err)
		}
		if challenge.Cost != 10 {
			t.Fatalf("drew dare costing %d, only cost 10 is affordable", challenge.Cost)
		}
	}
}
