// internal/app/features/notifications/handler.go
package notifications

import (
	notificationstore "github.com/sece-innovation/hackhub/internal/app/store/notifications"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves a user's notification feed and the coordinator
// broadcast endpoint.
type Handler struct {
	Log *zap.Logger

	Notifications *notificationstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		Notifications: notificationstore.New(db),
	}
}
