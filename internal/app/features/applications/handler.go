// internal/app/features/applications/handler.go
package applications

import (
	applicationstore "github.com/sece-innovation/hackhub/internal/app/store/applications"
	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	notificationstore "github.com/sece-innovation/hackhub/internal/app/store/notifications"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves application submission, listing, and bulk approval.
type Handler struct {
	Log *zap.Logger

	Applications  *applicationstore.Store
	Hackathons    *hackathonstore.Store
	Notifications *notificationstore.Store

	UserRefs      *resolve.Users
	HackathonRefs *resolve.Hackathons
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		Applications:  applicationstore.New(db),
		Hackathons:    hackathonstore.New(db),
		Notifications: notificationstore.New(db),
		UserRefs:      resolve.NewUsers(db),
		HackathonRefs: resolve.NewHackathons(db),
	}
}
