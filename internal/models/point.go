package models

import "time"

// PointEvent is a single append-only ledger entry for one partner. Events are
// never updated or deleted; a partner's balance is always the sum of their
// events' amounts.
type PointEvent struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Amount    int       `bson:"amount" json:"amount"`
	Reason    string    `bson:"reason" json:"reason"`
	Partner   string    `bson:"partner" json:"partner"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AddPointsRequest is the payload for POST /api/points
type AddPointsRequest struct {
	Amount  int    `json:"amount" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
	Partner string `json:"partner" binding:"required"`
}

// TotalPointsResponse is the body for GET /api/points/total
type TotalPointsResponse struct {
	Total int `json:"total"`
}
