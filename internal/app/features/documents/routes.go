// internal/app/features/documents/routes.go
package documents

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

// Routes mounts the document routes. Any signed-in user can list and
// download; uploads and deletes are coordinator-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Get("/", h.HandleList)

	r.Group(func(cr chi.Router) {
		cr.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))
		cr.Post("/", h.HandleUpload)
		cr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
