// internal/app/features/stats/handler.go
package stats

import (
	applicationstore "github.com/sece-innovation/hackhub/internal/app/store/applications"
	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	userstore "github.com/sece-innovation/hackhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the coordinator dashboard statistics.
type Handler struct {
	Log *zap.Logger

	Hackathons   *hackathonstore.Store
	Applications *applicationstore.Store
	Users        *userstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:          logger,
		Hackathons:   hackathonstore.New(db),
		Applications: applicationstore.New(db),
		Users:        userstore.New(db),
	}
}
