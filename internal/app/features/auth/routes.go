// internal/app/features/auth/routes.go
package auth

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
)

// Routes mounts the auth routes. Typically: r.Mount("/auth", auth.Routes(h)).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.HandleSignup)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(systemauth.RequireSignedIn)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
