// internal/app/features/hackathons/list.go
package hackathons

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleList returns all hackathons, newest first.
// GET /hackathons
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Hackathons.List(ctx)
	if err != nil {
		h.Log.Error("hackathon list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if list == nil {
		list = []models.Hackathon{}
	}
	httpjson.Write(w, http.StatusOK, list)
}

// HandleGet returns a single hackathon.
// GET /hackathons/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hk, err := h.Hackathons.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}
	if err != nil {
		h.Log.Error("hackathon get failed", zap.String("hackathon_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, hk)
}
