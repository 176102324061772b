// internal/app/features/registrations/list.go
package registrations

import (
	"context"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleList returns registrations scoped by role: coordinators see
// every registration with user and hackathon attached, everyone else
// sees only their own with the hackathon attached.
// GET /registrations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if authz.IsCoordinator(r) {
		h.listAll(w, r)
		return
	}
	h.listMine(w, r)
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	regs, err := h.Registrations.ListByUser(ctx, userID)
	if err != nil {
		h.Log.Error("registration list failed", zap.String("user_id", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	hackIDs := make([]primitive.ObjectID, 0, len(regs))
	for _, reg := range regs {
		hackIDs = append(hackIDs, reg.Hackathon)
	}
	hacks := resolve.Attach(ctx, h.HackathonRefs, hackIDs)

	out := make([]myRegistration, 0, len(regs))
	for _, reg := range regs {
		row := myRegistration{
			ID:               reg.ID,
			RegistrationDate: reg.RegistrationDate,
		}
		if hk, ok := hacks[reg.Hackathon]; ok {
			row.Hackathon = &hk
		}
		out = append(out, row)
	}
	httpjson.Write(w, http.StatusOK, out)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	regs, err := h.Registrations.List(ctx, nil)
	if err != nil {
		h.Log.Error("registration list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(regs))
	hackIDs := make([]primitive.ObjectID, 0, len(regs))
	for _, reg := range regs {
		userIDs = append(userIDs, reg.User)
		hackIDs = append(hackIDs, reg.Hackathon)
	}
	users := resolve.Attach(ctx, h.UserRefs, userIDs)
	hacks := resolve.Attach(ctx, h.HackathonRefs, hackIDs)

	out := make([]resolvedRegistration, 0, len(regs))
	for _, reg := range regs {
		var (
			user models.UserSummary
			hack models.HackathonSummary
			ok   bool
		)
		if user, ok = users[reg.User]; !ok {
			continue
		}
		if hack, ok = hacks[reg.Hackathon]; !ok {
			continue
		}
		out = append(out, resolvedRegistration{
			ID:               reg.ID,
			User:             user,
			Hackathon:        hack,
			RegistrationDate: reg.RegistrationDate,
		})
	}
	httpjson.Write(w, http.StatusOK, out)
}
