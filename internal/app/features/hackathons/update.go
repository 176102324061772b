// internal/app/features/hackathons/update.go
package hackathons

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	"github.com/sece-innovation/hackhub/internal/app/system/htmlsanitize"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdate applies a partial update from a multipart form. Absent
// fields are left unchanged; a new poster file replaces the stored path.
// PUT /hackathons/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	upd := hackathonstore.Update{
		Name:             r.FormValue("name"),
		Organizer:        r.FormValue("organizer"),
		Mode:             r.FormValue("mode"),
		Location:         r.FormValue("location"),
		PrizePool:        r.FormValue("prizePool"),
		RegistrationLink: r.FormValue("registrationLink"),
		Eligibility:      r.FormValue("eligibility"),
		CollegeDBLink:    r.FormValue("collegeDBLink"),
	}
	if desc := r.FormValue("description"); desc != "" {
		upd.Description = htmlsanitize.Sanitize(desc)
	}
	if raw := r.FormValue("dates"); raw != "" {
		if upd.Dates, err = parseDates(raw); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid format for dates.")
			return
		}
	}
	if raw := r.FormValue("themes"); raw != "" {
		if upd.Themes, err = parseThemes(raw); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid format for themes.")
			return
		}
	}
	if raw := r.FormValue("eligibleDepartments"); raw != "" {
		upd.EligibleDepartments = parseDepartments(raw)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	poster, err := uploadPoster(ctx, h.Storage, r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	upd.Poster = poster

	updated, err := h.Hackathons.Apply(ctx, id, upd)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "Hackathon not found")
		return
	}
	if err != nil {
		h.Log.Error("hackathon update failed", zap.String("hackathon_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}
