package applicationstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadyApplied is returned when a student applies twice to the same
// hackathon. The unique index on (hackathon, student) backs this up for
// concurrent requests that pass the existence pre-check.
var ErrAlreadyApplied = errors.New("already applied to this hackathon")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("applications")}
}

// Create inserts a new application with status pending. The existence
// pre-check gives a friendly error on the common path; the unique index
// resolves races.
func (s *Store) Create(ctx context.Context, hackathonID, studentID primitive.ObjectID) (models.Application, error) {
	err := s.c.FindOne(ctx, bson.M{"hackathon": hackathonID, "student": studentID}).Err()
	if err == nil {
		return models.Application{}, ErrAlreadyApplied
	}
	if err != mongo.ErrNoDocuments {
		return models.Application{}, err
	}

	now := time.Now()
	app := models.Application{
		ID:        primitive.NewObjectID(),
		Hackathon: hackathonID,
		Student:   studentID,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, app); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Application{}, ErrAlreadyApplied
		}
		return models.Application{}, err
	}
	return app, nil
}

// ListByStudent returns a student's applications, newest first.
func (s *Store) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Application, error) {
	return s.list(ctx, bson.M{"student": studentID})
}

// List returns applications, newest first, optionally filtered to one
// hackathon.
func (s *Store) List(ctx context.Context, hackathonID *primitive.ObjectID) ([]models.Application, error) {
	filter := bson.M{}
	if hackathonID != nil {
		filter["hackathon"] = *hackathonID
	}
	return s.list(ctx, filter)
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Application, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Application
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BulkApprove sets status approved on every application whose ID is in
// ids, then returns the matched applications. IDs that match nothing
// are skipped, not errors.
func (s *Store) BulkApprove(ctx context.Context, ids []primitive.ObjectID) ([]models.Application, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	_, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"status": models.StatusApproved, "updatedAt": time.Now()}})
	if err != nil {
		return nil, err
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Application
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByHackathon removes all applications for a hackathon. Used by
// the hackathon delete cascade.
func (s *Store) DeleteByHackathon(ctx context.Context, hackathonID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"hackathon": hackathonID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of applications matching status; an empty
// status counts all.
func (s *Store) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.c.CountDocuments(ctx, filter)
}

// DistinctStudents returns the number of distinct students with at
// least one application.
func (s *Store) DistinctStudents(ctx context.Context) (int64, error) {
	vals, err := s.c.Distinct(ctx, "student", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(vals)), nil
}
