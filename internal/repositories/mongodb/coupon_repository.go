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

// Compile-time check to ensure CouponRepository implements the interface
var _ repositories.CouponRepository = (*CouponRepository)(nil)

// CouponRepository handles MongoDB operations for Coupon
type CouponRepository struct {
	collection *mongo.Collection
}

// NewCouponRepository creates a new CouponRepository
func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{
		collection: db.Collection("coupons"),
	}
}

// Create inserts a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	coupon.ID = primitive.NewObjectID().Hex()
	_, err := r.collection.InsertOne(ctx, coupon)
	return err
}

// FindByID finds a coupon by its id
func (r *CouponRepository) FindByID(ctx context.Context, id string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindAll returns every coupon, newest first
func (r *CouponRepository) FindAll(ctx context.Context) ([]*models.Coupon, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*models.Coupon
	if err = cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	if coupons == nil {
		coupons = []*models.Coupon{}
	}
	return coupons, nil
}

// Update replaces the stored coupon with the given one
func (r *CouponRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": coupon.ID}, coupon)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete removes a coupon by its id
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
