// internal/app/features/odforms/routes.go
package odforms

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Get("/latest", h.HandleLatest)
	r.Get("/", h.HandleList)

	r.Group(func(cr chi.Router) {
		cr.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))
		cr.Post("/", h.HandleUpload)
	})

	return r
}
