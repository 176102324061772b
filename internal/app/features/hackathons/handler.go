// internal/app/features/hackathons/handler.go
package hackathons

import (
	"github.com/dalemusser/waffle/pantry/storage"
	applicationstore "github.com/sece-innovation/hackhub/internal/app/store/applications"
	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	registrationstore "github.com/sece-innovation/hackhub/internal/app/store/registrations"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves hackathon CRUD and the coordinator participation views.
type Handler struct {
	Log     *zap.Logger
	Storage storage.Store

	Hackathons    *hackathonstore.Store
	Applications  *applicationstore.Store
	Registrations *registrationstore.Store

	UserRefs      *resolve.Users
	HackathonRefs *resolve.Hackathons
}

func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		Storage:       store,
		Hackathons:    hackathonstore.New(db),
		Applications:  applicationstore.New(db),
		Registrations: registrationstore.New(db),
		UserRefs:      resolve.NewUsers(db),
		HackathonRefs: resolve.NewHackathons(db),
	}
}
