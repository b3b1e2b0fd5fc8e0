package memory

import (
	"context"
	"testing"

	"github.com/relationtrack/relationtrack-backend/internal/models"
)

func TestChallengeRepositorySeed(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	truths, err := repo.FindByMode(ctx, models.ModeTruth, 0)
	if err != nil {
		t.Fatalf("FindByMode returned error: %v", err)
	}
	if len(truths) != 5 {
		t.Errorf("seeded %d truths, want 5", len(truths))
	}

	dares, err := repo.FindByMode(ctx, models.ModeDare, 0)
	if err != nil {
		t.Fatalf("FindByMode returned error: %v", err)
	}
	if len(dares) != 5 {
		t.Errorf("seeded %d dares, want 5", len(dares))
	}

	for _, challenge := range append(truths, dares...) {
		if challenge.ID == "" {
			t.Errorf("seeded challenge %q has no id", challenge.Prompt)
		}
		if challenge.Cost <= 0 {
			t.Errorf("seeded challenge %q has cost %d, want > 0", challenge.Prompt, challenge.Cost)
		}
		if challenge.Intensity < 1 || challenge.Intensity > 5 {
			t.Errorf("seeded challenge %q has intensity %d, want 1-5", challenge.Prompt, challenge.Intensity)
		}
	}
}

func TestChallengeRepositoryIntensityFilter(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	dares, err := repo.FindByMode(ctx, models.ModeDare, 3)
	if err != nil {
		t.Fatalf("FindByMode returned error: %v", err)
	}
	if len(dares) != 2 {
		t.Fatalf("FindByMode(dare, 3) returned %d dares, want 2 from seed", len(dares))
	}
	for _, dare := range dares {
		if dare.Intensity != 3 {
			t.Errorf("filtered dare has intensity %d, want 3", dare.Intensity)
		}
	}
}

func TestChallengeRepositoryCreate(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	challenge := &models.Challenge{
		Mode:      models.ModeTruth,
		Prompt:    "What's your favorite meal I cook?",
		Intensity: 2,
		Cost:      5,
		CreatedBy: "partner2",
	}
	if err := repo.Create(ctx, challenge); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if challenge.ID == "" {
		t.Fatal("Create left the challenge without an id")
	}

	truths, err := repo.FindByMode(ctx, models.ModeTruth, 0)
	if err != nil {
		t.Fatalf("FindByMode returned error: %v", err)
	}
	if len(truths) != 6 {
		t.Errorf("FindByMode returned %d truths after create, want 6", len(truths))
	}
}
