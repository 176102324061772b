// internal/app/features/applications/apply.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/sece-innovation/hackhub/internal/app/store/applications"
	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/metrics"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleApply submits an application for the current student. A second
// application for the same hackathon is a hard 400, unlike a repeat
// registration which is recovered silently.
// POST /applications
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var in applyInput
	if !httpjson.Decode(w, r, &in) {
		return
	}

	hackathonID, err := primitive.ObjectIDFromHex(in.HackathonID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid hackathonId")
		return
	}

	_, _, studentID, ok := authz.UserCtx(r)
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

	app, err := h.Applications.Create(ctx, hackathonID, studentID)
	if err == applicationstore.ErrAlreadyApplied {
		httpjson.Error(w, http.StatusBadRequest, "Already applied to this hackathon")
		return
	}
	if err != nil {
		h.Log.Error("application create failed",
			zap.String("hackathon_id", hackathonID.Hex()),
			zap.String("student_id", studentID.Hex()),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.ApplicationsCreated.Inc()
	httpjson.Write(w, http.StatusCreated, app)
}
