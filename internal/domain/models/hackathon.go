// internal/domain/models/hackathon.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mode values for Hackathon.Mode.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// ValidMode reports whether m is a known hackathon mode.
func ValidMode(m string) bool {
	return m == ModeOnline || m == ModeOffline || m == ModeHybrid
}

// Hackathon is an event created by a coordinator. Students participate
// either by applying through the platform (Application) or by clicking
// through to the external RegistrationLink (Registration).
type Hackathon struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Poster    string             `bson:"poster,omitempty" json:"poster,omitempty"` // storage path
	Organizer string             `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Dates     []time.Time        `bson:"dates" json:"dates"`
	Mode      string             `bson:"mode" json:"mode"` // online | offline | hybrid

	Description string   `bson:"description" json:"description"` // sanitized HTML
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	PrizePool   string   `bson:"prizePool,omitempty" json:"prizePool,omitempty"`
	Themes      []string `bson:"themes,omitempty" json:"themes,omitempty"`

	RegistrationLink string `bson:"registrationLink" json:"registrationLink"`

	// Empty means open to all departments.
	EligibleDepartments []string `bson:"eligibleDepartments,omitempty" json:"eligibleDepartments,omitempty"`
	Eligibility         string   `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	CollegeDBLink       string   `bson:"collegeDBLink,omitempty" json:"collegeDBLink,omitempty"`

	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HackathonSummary is the fixed projection of a Hackathon attached to
// populated records.
type HackathonSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Dates []time.Time        `bson:"dates" json:"dates"`
	Mode  string             `bson:"mode" json:"mode"`
}
