// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateStudent creates a test student with the given identity fields.
func (f *Fixtures) CreateStudent(ctx context.Context, name, email, rollNumber, department string, year int) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		Password:   "not-a-real-hash",
		Role:       models.RoleStudent,
		RollNumber: rollNumber,
		Department: department,
		Year:       year,
		Section:    "A",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return user
}

// CreateCoordinator creates a test coordinator.
func (f *Fixtures) CreateCoordinator(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  "not-a-real-hash",
		Role:      models.RoleCoordinator,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test coordinator: %v", err)
	}
	return user
}

// CreateHackathon creates a test hackathon owned by createdBy.
func (f *Fixtures) CreateHackathon(ctx context.Context, name, mode string, createdBy primitive.ObjectID) models.Hackathon {
	f.t.Helper()

	now := time.Now().UTC()
	hk := models.Hackathon{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Dates:            []time.Time{now.AddDate(0, 0, 7)},
		Mode:             mode,
		Description:      "A test hackathon.",
		RegistrationLink: "https://example.com/register",
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("hackathons").InsertOne(ctx, hk); err != nil {
		f.t.Fatalf("failed to create test hackathon: %v", err)
	}
	return hk
}

// CreateApplication creates a test application with the given status.
func (f *Fixtures) CreateApplication(ctx context.Context, hackathonID, studentID primitive.ObjectID, status string) models.Application {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.Application{
		ID:        primitive.NewObjectID(),
		Hackathon: hackathonID,
		Student:   studentID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// CreateRegistration creates a test registration.
func (f *Fixtures) CreateRegistration(ctx context.Context, hackathonID, userID primitive.ObjectID) models.Registration {
	f.t.Helper()

	reg := models.Registration{
		ID:               primitive.NewObjectID(),
		Hackathon:        hackathonID,
		User:             userID,
		RegistrationDate: time.Now().UTC(),
	}

	if _, err := f.db.Collection("registrations").InsertOne(ctx, reg); err != nil {
		f.t.Fatalf("failed to create test registration: %v", err)
	}
	return reg
}
