package models

import "time"

// Task is a household task assigned to one partner. Completing it credits the
// assignee's points ledger exactly once; deleting it never touches the ledger.
type Task struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Points      int        `bson:"points" json:"points"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	AssignedTo  string     `bson:"assignedTo" json:"assignedTo"`
}

// CreateTaskRequest is the payload for POST /api/tasks
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Points      int    `json:"points" binding:"required,gte=0"`
	AssignedTo  string `json:"assignedTo" binding:"required"`
}
