package odformstore

import (
	"context"
	"time"

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
	return &Store{c: db.Collection("odforms")}
}

// Create inserts an OD form record.
func (s *Store) Create(ctx context.Context, f models.ODForm) (models.ODForm, error) {
	f.ID = primitive.NewObjectID()
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.ODForm{}, err
	}
	return f, nil
}

// Latest returns the most recently uploaded OD form, or
// mongo.ErrNoDocuments when none exist.
func (s *Store) Latest(ctx context.Context) (*models.ODForm, error) {
	var f models.ODForm
	err := s.c.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})).Decode(&f)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns all OD forms, newest first.
func (s *Store) List(ctx context.Context) ([]models.ODForm, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ODForm
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
