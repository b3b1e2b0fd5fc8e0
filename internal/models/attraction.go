package models

import "time"

// Attraction is a "why I find you attractive" note. Outside the points
// economy; list and create only.
type Attraction struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Detail    string    `bson:"detail" json:"detail"`
	Type      string    `bson:"type" json:"type"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateAttractionRequest is the payload for POST /api/attractions
type CreateAttractionRequest struct {
	Detail    string `json:"detail" binding:"required"`
	Type      string `json:"type" binding:"required"`
	CreatedBy string `json:"createdBy" binding:"required"`
}
