// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	userstore "github.com/sece-innovation/hackhub/internal/app/store/users"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleSignup creates a new account and returns its identity plus a token.
// POST /auth/signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	if !httpjson.Decode(w, r, &in) {
		return
	}

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		httpjson.Error(w, http.StatusBadRequest, "Name, email, password, and role are required")
		return
	}
	if in.Role == models.RoleStudent {
		var missing []string
		if in.RollNumber == "" {
			missing = append(missing, "rollNumber")
		}
		if in.Year == 0 {
			missing = append(missing, "year")
		}
		if in.Section == "" {
			missing = append(missing, "section")
		}
		if len(missing) > 0 {
			httpjson.Error(w, http.StatusBadRequest,
				fmt.Sprintf("Missing required student field(s): %s", strings.Join(missing, ", ")))
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:       in.Name,
		Email:      in.Email,
		Password:   string(hash),
		Role:       in.Role,
		RollNumber: in.RollNumber,
		Department: in.Department,
		Year:       in.Year,
		Section:    in.Section,
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			httpjson.Error(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.Log.Error("user create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.Tokens.IssueToken(user.ID.Hex())
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	httpjson.Write(w, http.StatusCreated, identityResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	})
}
