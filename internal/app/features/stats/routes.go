// internal/app/features/stats/routes.go
package stats

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/domain/models"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)
	r.Use(systemauth.RequireRole(models.RoleCoordinator, models.RoleStudentAdmin))

	r.Get("/dashboard", h.HandleDashboard)

	return r
}
