// internal/app/features/hackathons/participated.go
package hackathons

import (
	"context"
	"net/http"
	"time"

	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleParticipatedStudents returns applications with their student
// and hackathon references attached, filtered by event mode and a date
// window on the first event date. Rows with an unresolved reference
// are dropped; when a date window is given, rows whose hackathon has
// no dates are dropped too.
// GET /hackathons/participated-students?hackathonId&mode&startDate&endDate
func (h *Handler) HandleParticipatedStudents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	hackathonID, err := optionalObjectID(q.Get("hackathonId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid hackathonId")
		return
	}
	start, err := optionalDate(q.Get("startDate"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid startDate")
		return
	}
	end, err := optionalDate(q.Get("endDate"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid endDate")
		return
	}
	mode := q.Get("mode")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	apps, err := h.Applications.List(ctx, hackathonID)
	if err != nil {
		h.Log.Error("participated-students fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(apps))
	hackIDs := make([]primitive.ObjectID, 0, len(apps))
	for _, app := range apps {
		userIDs = append(userIDs, app.Student)
		hackIDs = append(hackIDs, app.Hackathon)
	}
	users := resolve.Attach(ctx, h.UserRefs, userIDs)
	hacks := resolve.Attach(ctx, h.HackathonRefs, hackIDs)

	out := make([]resolvedApplication, 0, len(apps))
	for _, app := range apps {
		user, ok := users[app.Student]
		if !ok {
			continue
		}
		hack, ok := hacks[app.Hackathon]
		if !ok {
			continue
		}
		if mode != "" && hack.Mode != mode {
			continue
		}
		if start != nil || end != nil {
			if len(hack.Dates) == 0 {
				continue
			}
			eventDate := hack.Dates[0]
			if start != nil && eventDate.Before(*start) {
				continue
			}
			if end != nil && eventDate.After(*end) {
				continue
			}
		}
		out = append(out, resolvedApplication{
			ID:        app.ID,
			Hackathon: hack,
			Student:   user,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
			UpdatedAt: app.UpdatedAt,
		})
	}

	httpjson.Write(w, http.StatusOK, out)
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
