// internal/app/features/auth/login.go
package auth

import (
	"context"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/metrics"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleLogin authenticates by email and password and returns the
// identity plus a fresh token. The demo allow-list is consulted before
// the store, so demo identities work without any database row.
// POST /auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !httpjson.Decode(w, r, &in) {
		return
	}

	if demo, ok := h.Tokens.DemoByCredentials(in.Email, in.Password); ok {
		token, err := h.Tokens.IssueToken(demo.ID)
		if err != nil {
			h.Log.Error("token issue failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Login failed")
			return
		}
		metrics.Logins.Inc()
		httpjson.Write(w, http.StatusOK, identityResponse{
			ID:         demo.ID,
			Name:       demo.Name,
			Email:      demo.Email,
			Role:       demo.Role,
			Department: demo.Department,
			Year:       demo.Year,
			Section:    demo.Section,
			Token:      token,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Students report their current year/section at login; keep the
	// profile in sync.
	if user.IsStudent() && (in.Year > 0 || in.Section != "") {
		if err := h.Users.UpdateYearSection(ctx, user.ID, in.Year, in.Section); err != nil {
			h.Log.Warn("year/section refresh failed",
				zap.String("user_id", user.ID.Hex()), zap.Error(err))
		} else {
			if in.Year > 0 {
				user.Year = in.Year
			}
			if in.Section != "" {
				user.Section = in.Section
			}
		}
	}

	token, err := h.Tokens.IssueToken(user.ID.Hex())
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}

	metrics.Logins.Inc()
	httpjson.Write(w, http.StatusOK, identityResponse{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Year:    user.Year,
		Section: user.Section,
		Token:   token,
	})
}
