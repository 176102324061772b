// internal/app/features/messages/routes.go
package messages

import (
	"github.com/go-chi/chi/v5"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
)

// Routes mounts the message board. Any signed-in user may post and
// read; coordinator posts are distinguished by SenderRole, not by a
// separate route.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(systemauth.RequireSignedIn)

	r.Post("/", h.HandleSend)
	r.Get("/", h.HandleList)

	return r
}
