package models

// Challenge modes
const (
	ModeTruth = "truth"
	ModeDare  = "dare"
)

// Default challenge costs applied when a create request omits the cost
const (
	DefaultTruthCost = 5
	DefaultDareCost  = 10
)

// Challenge is a truth or dare prompt in the couple's game. Truths and dares
// share one shape and are distinguished by Mode; they are immutable after
// creation and are never consumed — drawing one only debits the drawer.
type Challenge struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Mode      string `bson:"mode" json:"mode"`
	Prompt    string `bson:"prompt" json:"prompt"`
	Intensity int    `bson:"intensity" json:"intensity"`
	Cost      int    `bson:"cost" json:"cost"`
	CreatedBy string `bson:"createdBy" json:"createdBy"`
}

// CreateChallengeRequest is the payload for POST /api/game/truths and
// POST /api/game/dares. Cost is optional; the mode default applies when it
// is omitted.
type CreateChallengeRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=5"`
	Cost      int    `json:"cost" binding:"omitempty,gt=0"`
	CreatedBy string `json:"createdBy" binding:"required"`
}

// DrawRequest is the payload for POST /api/game/draw
type DrawRequest struct {
	Partner   string `json:"partner" binding:"required"`
	Mode      string `json:"mode" binding:"required,oneof=truth dare"`
	Intensity int    `json:"intensity" binding:"omitempty,min=1,max=5"`
}
