package mongodb

import (
	"context"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PointRepository implements the interface
var _ repositories.PointRepository = (*PointRepository)(nil)

// PointRepository handles MongoDB operations for the points ledger
type PointRepository struct {
	collection *mongo.Collection
}

// NewPointRepository creates a new PointRepository
func NewPointRepository(db *mongo.Database) *PointRepository {
	return &PointRepository{
		collection: db.Collection("points"),
	}
}

// Create inserts a new ledger event
func (r *PointRepository) Create(ctx context.Context, event *models.PointEvent) error {
	event.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindByPartner returns ledger events most-recent-first, filtered to one
// partner when partner is non-empty.
func (r *PointRepository) FindByPartner(ctx context.Context, partner string) ([]*models.PointEvent, error) {
	filter := bson.M{}
	if partner != "" {
		filter["partner"] = partner
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*models.PointEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.PointEvent{}
	}
	return events, nil
}

// TotalByPartner sums the amounts of a partner's ledger events. A partner
// with no events totals 0.
func (r *PointRepository) TotalByPartner(ctx context.Context, partner string) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"partner": partner}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
