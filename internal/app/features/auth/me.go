// internal/app/features/auth/me.go
package auth

import (
	"net/http"

	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
)

// ServeMe returns the authenticated user's identity. The token
// middleware has already resolved the subject (allow-list or store), so
// this is a pure context read.
// GET /auth/me
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := systemauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	httpjson.Write(w, http.StatusOK, identityResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Year:       u.Year,
		Section:    u.Section,
	})
}
