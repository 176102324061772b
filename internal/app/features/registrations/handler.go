// internal/app/features/registrations/handler.go
package registrations

import (
	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	registrationstore "github.com/sece-innovation/hackhub/internal/app/store/registrations"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves external-link registration tracking.
type Handler struct {
	Log *zap.Logger

	Registrations *registrationstore.Store
	Hackathons    *hackathonstore.Store

	UserRefs      *resolve.Users
	HackathonRefs *resolve.Hackathons
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		Registrations: registrationstore.New(db),
		Hackathons:    hackathonstore.New(db),
		UserRefs:      resolve.NewUsers(db),
		HackathonRefs: resolve.NewHackathons(db),
	}
}
