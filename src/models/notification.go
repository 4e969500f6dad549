package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification categories.
const (
	CategoryDrive        = "drive"
	CategoryReminder     = "reminder"
	CategoryAnnouncement = "announcement"
	CategorySuccess      = "success"
	CategoryError        = "error"
	CategoryInfo         = "info"
)

// TargetRoleAll broadcasts to every user.
const TargetRoleAll = "all"

// Notification is a fire-and-forget message addressed either to one user
// (UserID) or to a role (TargetRole, including "all").
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	TargetRole string             `bson:"targetRole,omitempty" json:"targetRole,omitempty" example:"student"`
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	Category   string             `bson:"category" json:"category" example:"info"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
