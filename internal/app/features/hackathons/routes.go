// internal/app/features/hackathons/routes.go
package hackathons

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

// Routes mounts the hackathon routes. Reads are open to any signed-in
// user; writes and the participation views are coordinator-only.
// The fixed paths (participants, participated-students) are registered
// before the {id} wildcard.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Get("/", h.HandleList)

	r.Group(func(cr chi.Router) {
		cr.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))

		cr.Post("/", h.HandleCreate)
		cr.Get("/participants", h.HandleParticipants)
		cr.Get("/participated-students", h.HandleParticipatedStudents)
		cr.Put("/{id}", h.HandleUpdate)
		cr.Delete("/{id}", h.HandleDelete)
	})

	r.Get("/{id}", h.HandleGet)

	return r
}
