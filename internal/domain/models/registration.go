// internal/domain/models/registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration records a student's intent to sign up through a
// hackathon's external registration link. It has no approval lifecycle;
// a registration is terminal. At most one exists per (hackathon, user)
// pair, enforced by a unique index, and duplicate creates return the
// existing record.
type Registration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Hackathon        primitive.ObjectID `bson:"hackathon" json:"hackathon"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	RegistrationDate time.Time          `bson:"registrationDate" json:"registrationDate"`
}
