// internal/app/features/applications/routes.go
package applications

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

// Routes mounts the application routes. Students apply and view their
// own; coordinators view all and bulk-approve.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Group(func(sr chi.Router) {
		sr.Use(systemauth.RequireRole(models.RoleStudent))
		sr.Post("/", h.HandleApply)
		sr.Get("/my-applications", h.HandleListMine)
	})

	r.Group(func(cr chi.Router) {
		cr.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))
		cr.Get("/", h.HandleListAll)
		cr.Post("/bulk-approve", h.HandleBulkApprove)
	})

	return r
}
