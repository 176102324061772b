// internal/app/features/applications/list.go
package applications

import (
	"context"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleListMine returns the current student's applications with the
// full hackathon attached, newest first. An application whose
// hackathon was deleted out from under it is returned with a nil
// hackathon rather than hidden, so the student still sees their
// history.
// GET /applications/my-applications
func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	_, _, studentID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	apps, err := h.Applications.ListByStudent(ctx, studentID)
	if err != nil {
		h.Log.Error("my-applications fetch failed", zap.String("student_id", studentID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	hackIDs := make([]primitive.ObjectID, 0, len(apps))
	for _, app := range apps {
		hackIDs = append(hackIDs, app.Hackathon)
	}
	hacks, err := h.Hackathons.GetByIDs(ctx, hackIDs)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]myApplication, 0, len(apps))
	for _, app := range apps {
		row := myApplication{
			ID:        app.ID,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
			UpdatedAt: app.UpdatedAt,
		}
		if hk, ok := hacks[app.Hackathon]; ok {
			row.Hackathon = &hk
		}
		out = append(out, row)
	}
	httpjson.Write(w, http.StatusOK, out)
}

// HandleListAll returns every application with its student and
// hackathon projections attached, newest first. Rows whose references
// no longer resolve are dropped rather than sent with blank identities.
// GET /applications
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	apps, err := h.Applications.List(ctx, nil)
	if err != nil {
		h.Log.Error("application list failed", zap.Error(err))
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
		out = append(out, resolvedApplication{
			ID:        app.ID,
			Student:   user,
			Hackathon: hack,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
			UpdatedAt: app.UpdatedAt,
		})
	}
	httpjson.Write(w, http.StatusOK, out)
}
