package notificationstore

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
	return &Store{c: db.Collection("notifications")}
}

// CreateMany inserts a batch of notifications in one call. A nil/empty
// batch is a no-op.
func (s *Store) CreateMany(ctx context.Context, ns []models.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	docs := make([]any, 0, len(ns))
	now := time.Now()
	for i := range ns {
		ns[i].ID = primitive.NewObjectID()
		ns[i].CreatedAt = now
		docs = append(docs, ns[i])
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// ListByRecipient returns a user's notifications, newest first.
func (s *Store) ListByRecipient(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	cur, err := s.c.Find(ctx, bson.M{"recipient": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Notification
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
