// internal/app/features/hackathons/delete.go
package hackathons

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete removes a hackathon and cascades deletion to its
// applications. Registrations are kept: they record that a student
// clicked through to an external site, which remains true after the
// event listing goes away.
// DELETE /hackathons/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	deleted, err := h.Hackathons.Delete(ctx, id)
	if err != nil {
		h.Log.Error("hackathon delete failed", zap.String("hackathon_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}

	removed, err := h.Applications.DeleteByHackathon(ctx, id)
	if err != nil {
		// The hackathon itself is gone; report the partial failure.
		h.Log.Error("application cascade failed", zap.String("hackathon_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info("hackathon deleted",
		zap.String("hackathon_id", id.Hex()),
		zap.Int64("applications_removed", removed))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Hackathon deleted successfully"})
}
