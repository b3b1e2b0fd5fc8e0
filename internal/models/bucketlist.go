package models

import "time"

// BucketlistItem is a shared bucket-list entry. It sits outside the points
// economy: completing one records the timestamp but writes nothing to the
// ledger.
type BucketlistItem struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedBy   string     `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// CreateBucketlistRequest is the payload for POST /api/bucketlist
type CreateBucketlistRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy" binding:"required"`
}
