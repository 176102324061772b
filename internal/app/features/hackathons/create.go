// internal/app/features/hackathons/create.go
package hackathons

import (
	"context"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/htmlsanitize"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate creates a hackathon from a multipart form. The dates,
// themes, and eligibleDepartments fields arrive as JSON-array strings;
// the poster is an optional image file.
// POST /hackathons
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	dates, err := parseDates(r.FormValue("dates"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	themes, err := parseThemes(r.FormValue("themes"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	hk := models.Hackathon{
		Name:                r.FormValue("name"),
		Organizer:           r.FormValue("organizer"),
		Dates:               dates,
		Mode:                r.FormValue("mode"),
		Description:         htmlsanitize.Sanitize(r.FormValue("description")),
		Location:            r.FormValue("location"),
		PrizePool:           r.FormValue("prizePool"),
		Themes:              themes,
		RegistrationLink:    r.FormValue("registrationLink"),
		EligibleDepartments: parseDepartments(r.FormValue("eligibleDepartments")),
		Eligibility:         r.FormValue("eligibility"),
		CollegeDBLink:       r.FormValue("collegeDBLink"),
	}

	if hk.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !models.ValidMode(hk.Mode) {
		httpjson.Error(w, http.StatusBadRequest, "Mode must be online, offline, or hybrid")
		return
	}
	if hk.RegistrationLink == "" {
		httpjson.Error(w, http.StatusBadRequest, "Registration link is required")
		return
	}
	if len(hk.Dates) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "At least one event date is required")
		return
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}
	hk.CreatedBy = userID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	poster, err := uploadPoster(ctx, h.Storage, r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	hk.Poster = poster

	created, err := h.Hackathons.Create(ctx, hk)
	if err != nil {
		h.Log.Error("hackathon create failed", zap.String("name", hk.Name), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info("hackathon created",
		zap.String("hackathon_id", created.ID.Hex()),
		zap.String("name", created.Name))
	httpjson.Write(w, http.StatusCreated, created)
}
