// internal/app/features/hackathons/types.go
package hackathons

import (
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuses used by the participant view. "registered" marks a row that
// came from an external-link registration and has no approval
// lifecycle; an application missing its status field falls back to
// "applied".
const (
	statusRegistered    = "registered"
	statusAppliedLegacy = "applied"
)

// ParticipantRow is the fixed merged-view row: one per distinct
// (student, hackathon) participation, whether it came from an
// application or a registration.
type ParticipantRow struct {
	ID         primitive.ObjectID      `json:"_id"`
	StudentID  primitive.ObjectID      `json:"studentId"`
	Name       string                  `json:"name"`
	RollNumber string                  `json:"rollNumber,omitempty"`
	Department string                  `json:"department,omitempty"`
	Year       int                     `json:"year,omitempty"`
	Hackathon  models.HackathonSummary `json:"hackathon"`
	Status     string                  `json:"status"`
	CreatedAt  time.Time               `json:"createdAt"`
}

// resolvedApplication is an application with both references attached,
// returned by the participated-students view.
type resolvedApplication struct {
	ID        primitive.ObjectID      `json:"_id"`
	Hackathon models.HackathonSummary `json:"hackathon"`
	Student   models.UserSummary      `json:"student"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
