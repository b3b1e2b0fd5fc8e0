package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
)

// Compile-time check to ensure ChallengeRepository implements the interface
var _ repositories.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository stores truths and dares in memory, pre-seeded with the
// starter game data so a fresh deployment has something to draw from.
type ChallengeRepository struct {
	mu         sync.RWMutex
	challenges map[string]*models.Challenge
}

// NewChallengeRepository creates a new in-memory ChallengeRepository with the
// starter truths and dares.
func NewChallengeRepository() *ChallengeRepository {
	r := &ChallengeRepository{
		challenges: make(map[string]*models.Challenge),
	}
	r.seed()
	return r
}

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge.ID = uuid.NewString()
	stored := *challenge
	r.challenges[challenge.ID] = &stored
	return nil
}

// FindByMode returns all challenges of one mode, filtered by intensity when
// intensity is positive.
func (r *ChallengeRepository) FindByMode(ctx context.Context, mode string, intensity int) ([]*models.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	challenges := make([]*models.Challenge, 0)
	for _, challenge := range r.challenges {
		if challenge.Mode != mode {
			continue
		}
		if intensity > 0 && challenge.Intensity != intensity {
			continue
		}
		found := *challenge
		challenges = append(challenges, &found)
	}
	return challenges, nil
}

// seed loads the starter truths and dares
func (r *ChallengeRepository) seed() {
	seeds := []models.Challenge{
		{Mode: models.ModeTruth, Prompt: "What's your favorite feature about your partner?", Intensity: 1, Cost: 5, CreatedBy: "partner1"},
		{Mode: models.ModeTruth, Prompt: "What was your first impression of me?", Intensity: 1, Cost: 5, CreatedBy: "partner2"},
		{Mode: models.ModeTruth, Prompt: "What's your most memorable date with me?", Intensity: 2, Cost: 10, CreatedBy: "partner1"},
		{Mode: models.ModeTruth, Prompt: "What's something you'd like to try together?", Intensity: 3, Cost: 15, CreatedBy: "partner2"},
		{Mode: models.ModeTruth, Prompt: "What's your biggest fantasy?", Intensity: 4, Cost: 20, CreatedBy: "partner1"},
		{Mode: models.ModeDare, Prompt: "Give your partner a sweet compliment", Intensity: 1, Cost: 10, CreatedBy: "partner1"},
		{Mode: models.ModeDare, Prompt: "Share a romantic dance together", Intensity: 2, Cost: 15, CreatedBy: "partner2"},
		{Mode: models.ModeDare, Prompt: "Give your partner a 5-minute massage", Intensity: 3, Cost: 20, CreatedBy: "partner1"},
		{Mode: models.ModeDare, Prompt: "Kiss your partner for 30 seconds", Intensity: 3, Cost: 25, CreatedBy: "partner2"},
		{Mode: models.ModeDare, Prompt: "Whisper something seductive", Intensity: 4, Cost: 30, CreatedBy: "partner1"},
	}

	for i := range seeds {
		challenge := seeds[i]
		challenge.ID = uuid.NewString()
		r.challenges[challenge.ID] = &challenge
	}
}
