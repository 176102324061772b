// internal/app/features/messages/handler.go
package messages

import (
	messagestore "github.com/sece-innovation/hackhub/internal/app/store/messages"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the shared message board.
type Handler struct {
	Log *zap.Logger

	Messages *messagestore.Store
	UserRefs *resolve.Users
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Messages: messagestore.New(db),
		UserRefs: resolve.NewUsers(db),
	}
}
