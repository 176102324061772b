// internal/domain/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a post on the shared coordinator/student message board.
// SenderRole is denormalized at write time so the board can badge
// coordinator posts without resolving the sender.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Sender     primitive.ObjectID `bson:"sender" json:"sender"`
	SenderRole string             `bson:"senderRole" json:"senderRole"`
	Content    string             `bson:"content" json:"content"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
