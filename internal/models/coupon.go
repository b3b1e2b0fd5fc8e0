package models

import "time"

// Coupon is a reward promise created by one partner for the other. Redeeming
// it debits the creator's ledger by Points, once. An unredeemed coupon is an
// outstanding obligation and cannot be deleted.
type Coupon struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Points      int        `bson:"points" json:"points"`
	Redeemed    bool       `bson:"redeemed" json:"redeemed"`
	RedeemedAt  *time.Time `bson:"redeemedAt,omitempty" json:"redeemedAt,omitempty"`
	CreatedBy   string     `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// CreateCouponRequest is the payload for POST /api/coupons
type CreateCouponRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"gte=0"`
	CreatedBy   string `json:"createdBy" binding:"required"`
}
