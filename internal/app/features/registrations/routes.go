// internal/app/features/registrations/routes.go
package registrations

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
)

// Routes mounts the registration routes. Any signed-in user may record
// a registration; the list view is scoped by role inside the handler.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)

	return r
}
