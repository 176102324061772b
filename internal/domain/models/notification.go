// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	NotificationApproval      = "approval"
	NotificationEventReminder = "event_reminder"
	NotificationAnnouncement  = "announcement"
)

// Notification is a message delivered to a single user, e.g. when a
// coordinator approves their application.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Recipient primitive.ObjectID `bson:"recipient" json:"recipient"`
	Type      string             `bson:"type" json:"type"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	Priority  string             `bson:"priority,omitempty" json:"priority,omitempty"` // low | medium | high

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
