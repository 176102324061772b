// internal/app/features/applications/types.go
package applications

import (
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// applyInput is the body of POST /applications.
type applyInput struct {
	HackathonID string `json:"hackathonId"`
}

// bulkApproveInput is the body of POST /applications/bulk-approve.
type bulkApproveInput struct {
	ApplicationIDs []string `json:"applicationIds"`
}

// myApplication is a student's application with the full hackathon
// attached, so the portal can render the event card without another
// round trip.
type myApplication struct {
	ID        primitive.ObjectID `json:"_id"`
	Hackathon *models.Hackathon  `json:"hackathon"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// resolvedApplication is the coordinator view: student and hackathon
// projections attached.
type resolvedApplication struct {
	ID        primitive.ObjectID      `json:"_id"`
	Student   models.UserSummary      `json:"student"`
	Hackathon models.HackathonSummary `json:"hackathon"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
