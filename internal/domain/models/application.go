// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status values for Application.Status.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is an internal, platform-tracked request by a student to
// join a hackathon. At most one exists per (hackathon, student) pair,
// enforced by a unique index. Status is mutated only by coordinators.
type Application struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Hackathon primitive.ObjectID `bson:"hackathon" json:"hackathon"`
	Student   primitive.ObjectID `bson:"student" json:"student"`
	Status    string             `bson:"status" json:"status"` // pending | approved | rejected

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
