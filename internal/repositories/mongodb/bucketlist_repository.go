package mongodb

import (
	"context"
	"errors"

	"github.com/relationtrack/relationtrack-backend/internal/models"
	"github.com/relationtrack/relationtrack-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure BucketlistRepository implements the interface
var _ repositories.BucketlistRepository = (*BucketlistRepository)(nil)

// BucketlistRepository handles MongoDB operations for BucketlistItem
type BucketlistRepository struct {
	collection *mongo.Collection
}

// NewBucketlistRepository creates a new BucketlistRepository
func NewBucketlistRepository(db *mongo.Database) *BucketlistRepository {
	return &BucketlistRepository{
		collection: db.Collection("bucketlist"),
	}
}

// Create inserts a new bucketlist item
func (r *BucketlistRepository) Create(ctx context.Context, item *models.BucketlistItem) error {
	item.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// FindByID finds a bucketlist item by its id
func (r *BucketlistRepository) FindByID(ctx context.Context, id string) (*models.BucketlistItem, error) {
	var item models.BucketlistItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns every bucketlist item, newest first
func (r *BucketlistRepository) FindAll(ctx context.Context) ([]*models.BucketlistItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*models.BucketlistItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.BucketlistItem{}
	}
	return items, nil
}

// Update replaces the stored bucketlist item with the given one
func (r *BucketlistRepository) Update(ctx context.Context, item *models.BucketlistItem) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
