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

// Compile-time check to ensure AttractionRepository implements the interface
var _ repositories.AttractionRepository = (*AttractionRepository)(nil)

// AttractionRepository handles MongoDB operations for Attraction
type AttractionRepository struct {
	collection *mongo.Collection
}

// NewAttractionRepository creates a new AttractionRepository
func NewAttractionRepository(db *mongo.Database) *AttractionRepository {
	return &AttractionRepository{
		collection: db.Collection("attractions"),
	}
}

// Create inserts a new attraction
func (r *AttractionRepository) Create(ctx context.Context, attraction *models.Attraction) error {
	attraction.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, attraction)
	return err
}

// FindAll returns every attraction, newest first
func (r *AttractionRepository) FindAll(ctx context.Context) ([]*models.Attraction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attractions []*models.Attraction
	if err = cursor.All(ctx, &attractions); err != nil {
		return nil, err
	}
	if attractions == nil {
		attractions = []*models.Attraction{}
	}
	return attractions, nil
}
