// internal/app/store/messages/messagestore.go
package messagestore

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
	return &Store{c: db.Collection("messages")}
}

// Create posts a message to the board.
func (s *Store) Create(ctx context.Context, sender primitive.ObjectID, senderRole, content string) (models.Message, error) {
	m := models.Message{
		ID:         primitive.NewObjectID(),
		Sender:     sender,
		SenderRole: senderRole,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

// List returns every message, newest first. The board is shared, so
// there is no per-user scoping.
func (s *Store) List(ctx context.Context) ([]models.Message, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Message
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
