// internal/app/features/notifications/routes.go
package notifications

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

// Routes mounts the notification routes. Every signed-in user reads
// their own feed; only coordinators may broadcast.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Get("/", h.HandleList)

	r.Group(func(cr chi.Router) {
		cr.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))

		cr.Post("/send-bulk", h.HandleSendBulk)
	})

	return r
}
