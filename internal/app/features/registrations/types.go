// internal/app/features/registrations/types.go
package registrations

import (
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createInput is the body of POST /registrations. The field is named
// "hackathon" rather than "hackathonId" for portal compatibility.
type createInput struct {
	Hackathon string `json:"hackathon"`
}

// myRegistration is a user's own registration with its hackathon
// projection attached.
type myRegistration struct {
	ID               primitive.ObjectID       `json:"_id"`
	Hackathon        *models.HackathonSummary `json:"hackathon"`
	RegistrationDate time.Time                `json:"registrationDate"`
}

// resolvedRegistration is the coordinator view: user and hackathon
// attached.
type resolvedRegistration struct {
	ID               primitive.ObjectID      `json:"_id"`
	User             models.UserSummary      `json:"user"`
	Hackathon        models.HackathonSummary `json:"hackathon"`
	RegistrationDate time.Time               `json:"registrationDate"`
}
