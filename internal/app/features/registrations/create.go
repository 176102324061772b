// internal/app/features/registrations/create.go
package registrations

import (
	"context"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/metrics"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate records that the current user clicked through to a
// hackathon's external registration link. The create is idempotent: a
// repeat click returns the existing record with 200 instead of an
// error.
// POST /registrations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createInput
	if !httpjson.Decode(w, r, &in) {
		return
	}

	hackathonID, err := primitive.ObjectIDFromHex(in.Hackathon)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid hackathon id")
		return
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Hackathons.GetByID(ctx, hackathonID); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	reg, created, err := h.Registrations.Create(ctx, hackathonID, userID)
	if err != nil {
		h.Log.Error("registration create failed",
			zap.String("hackathon_id", hackathonID.Hex()),
			zap.String("user_id", userID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		metrics.RegistrationsCreated.Inc()
	}
	httpjson.Write(w, status, reg)
}
