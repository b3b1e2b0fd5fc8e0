package mongodb

import (
	"context"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ChallengeRepository implements the interface
var _ repositories.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository handles MongoDB operations for truths and dares. Both
// modes share the "challenges" collection and are told apart by the mode
// field.
type ChallengeRepository struct {
	collection *mongo.Collection
}

// NewChallengeRepository creates a new ChallengeRepository
func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{
		collection: db.Collection("challenges"),
	}
}

// Create inserts a new challenge
func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	challenge.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, challenge)
	return err
}

// FindByMode returns all challenges of one mode, filtered by intensity when
// intensity is positive.
func (r *ChallengeRepository) FindByMode(ctx context.Context, mode string, intensity int) ([]*models.Challenge, error) {
	filter := bson.M{"mode": mode}
	if intensity > 0 {
		filter["intensity"] = intensity
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var challenges []*models.Challenge
	if err = cursor.All(ctx, &challenges); err != nil {
		return nil, err
	}
	if challenges == nil {
		challenges = []*models.Challenge{}
	}
	return challenges, nil
}
