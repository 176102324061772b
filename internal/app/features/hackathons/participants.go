// internal/app/features/hackathons/participants.go
package hackathons

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/metrics"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleParticipants merges applications and registrations into one
// de-duplicated participant list for the coordinator console.
//
// Registrations enter the view first with status "registered";
// applications enter second and overwrite a registration for the same
// (student, hackathon) pair, because an application carries the status
// lifecycle coordinators act on while "registered" is terminal.
// Records whose student or hackathon no longer resolves are dropped
// rather than emitted with blank identity fields.
// GET /hackathons/participants?hackathonId&department&year&status
func (h *Handler) HandleParticipants(w http.ResponseWriter, r *http.Request) {
	hackathonID, err := optionalObjectID(r.URL.Query().Get("hackathonId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid hackathonId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	apps, err := h.Applications.List(ctx, hackathonID)
	if err != nil {
		h.Log.Error("participant view: application fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	regs, err := h.Registrations.List(ctx, hackathonID)
	if err != nil {
		h.Log.Error("participant view: registration fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(apps)+len(regs))
	hackIDs := make([]primitive.ObjectID, 0, len(apps)+len(regs))
	for _, reg := range regs {
		userIDs = append(userIDs, reg.User)
		hackIDs = append(hackIDs, reg.Hackathon)
	}
	for _, app := range apps {
		userIDs = append(userIDs, app.Student)
		hackIDs = append(hackIDs, app.Hackathon)
	}

	users := resolve.Attach(ctx, h.UserRefs, userIDs)
	hacks := resolve.Attach(ctx, h.HackathonRefs, hackIDs)

	rows := mergeParticipants(regs, apps, users, hacks)
	rows = filterParticipants(rows,
		r.URL.Query().Get("department"),
		r.URL.Query().Get("year"),
		r.URL.Query().Get("status"))

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	metrics.ParticipantRows.Add(float64(len(rows)))
	httpjson.Write(w, http.StatusOK, rows)
}

// mergeParticipants builds the de-duplicated participation rows.
// Registration rows go in first; application rows overwrite any
// registration row with the same (student, hackathon) key. Source
// records with an unresolved user or hackathon reference are skipped.
func mergeParticipants(
	regs []models.Registration,
	apps []models.Application,
	users map[primitive.ObjectID]models.UserSummary,
	hacks map[primitive.ObjectID]models.HackathonSummary,
) []ParticipantRow {
	type pairKey struct {
		student   primitive.ObjectID
		hackathon primitive.ObjectID
	}

	index := make(map[pairKey]int, len(regs)+len(apps))
	rows := make([]ParticipantRow, 0, len(regs)+len(apps))

	for _, reg := range regs {
		user, ok := users[reg.User]
		if !ok {
			continue
		}
		hack, ok := hacks[reg.Hackathon]
		if !ok {
			continue
		}
		index[pairKey{reg.User, reg.Hackathon}] = len(rows)
		rows = append(rows, ParticipantRow{
			ID:         reg.ID,
			StudentID:  user.ID,
			Name:       user.Name,
			RollNumber: user.RollNumber,
			Department: user.Department,
			Year:       user.Year,
			Hackathon:  hack,
			Status:     statusRegistered,
			CreatedAt:  reg.RegistrationDate,
		})
	}

	for _, app := range apps {
		user, ok := users[app.Student]
		if !ok {
			continue
		}
		hack, ok := hacks[app.Hackathon]
		if !ok {
			continue
		}
		status := app.Status
		if status == "" {
			status = statusAppliedLegacy
		}
		row := ParticipantRow{
			ID:         app.ID,
			StudentID:  user.ID,
			Name:       user.Name,
			RollNumber: user.RollNumber,
			Department: user.Department,
			Year:       user.Year,
			Hackathon:  hack,
			Status:     status,
			CreatedAt:  app.CreatedAt,
		}
		key := pairKey{app.Student, app.Hackathon}
		if at, ok := index[key]; ok {
			rows[at] = row
			continue
		}
		index[key] = len(rows)
		rows = append(rows, row)
	}

	return rows
}

// filterParticipants applies the post-merge filters: department is a
// case-insensitive exact match, year matches its decimal string form,
// and status matches exactly unless the filter is "all".
func filterParticipants(rows []ParticipantRow, department, year, status string) []ParticipantRow {
	out := rows[:0]
	for _, row := range rows {
		if department != "" && !strings.EqualFold(row.Department, department) {
			continue
		}
		if year != "" && strconv.Itoa(row.Year) != year {
			continue
		}
		if status != "" && status != "all" && row.Status != status {
			continue
		}
		out = append(out, row)
	}
	return out
}

func optionalObjectID(raw string) (*primitive.ObjectID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
