package registrationstore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registrations")}
}

// Create records a registration for (hackathon, user). Creation is
// idempotent: when the unique index rejects a duplicate, the existing
// record is fetched and returned with created=false. An external-link
// click-through carries weaker commitment than an application, so a
// repeat click is not an error.
func (s *Store) Create(ctx context.Context, hackathonID, userID primitive.ObjectID) (models.Registration, bool, error) {
	reg := models.Registration{
		ID:               primitive.NewObjectID(),
		Hackathon:        hackathonID,
		User:             userID,
		RegistrationDate: time.Now(),
	}
	_, err := s.c.InsertOne(ctx, reg)
	if err == nil {
		return reg, true, nil
	}
	if !wafflemongo.IsDup(err) {
		return models.Registration{}, false, err
	}

	var existing models.Registration
	if err := s.c.FindOne(ctx, bson.M{"hackathon": hackathonID, "user": userID}).Decode(&existing); err != nil {
		return models.Registration{}, false, err
	}
	return existing, false, nil
}

// ListByUser returns a user's registrations, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Registration, error) {
	return s.list(ctx, bson.M{"user": userID})
}

// List returns registrations, newest first, optionally filtered to one
// hackathon.
func (s *Store) List(ctx context.Context, hackathonID *primitive.ObjectID) ([]models.Registration, error) {
	filter := bson.M{}
	if hackathonID != nil {
		filter["hackathon"] = *hackathonID
	}
	return s.list(ctx, filter)
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Registration, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "registrationDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Registration
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByPair loads the registration for (hackathon, user), if any.
func (s *Store) GetByPair(ctx context.Context, hackathonID, userID primitive.ObjectID) (*models.Registration, error) {
	var reg models.Registration
	if err := s.c.FindOne(ctx, bson.M{"hackathon": hackathonID, "user": userID}).Decode(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
