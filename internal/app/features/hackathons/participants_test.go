package hackathons

import (
	"testing"
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func summariesFor(users []models.UserSummary) map[primitive.ObjectID]models.UserSummary {
	out := make(map[primitive.ObjectID]models.UserSummary, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out
}

func hackSummariesFor(hacks []models.HackathonSummary) map[primitive.ObjectID]models.HackathonSummary {
	out := make(map[primitive.ObjectID]models.HackathonSummary, len(hacks))
	for _, h := range hacks {
		out[h.ID] = h
	}
	return out
}

func TestMergeParticipants_ApplicationOverridesRegistration(t *testing.T) {
	student := models.UserSummary{ID: primitive.NewObjectID(), Name: "Asha", Department: "CSE", Year: 3}
	hack := models.HackathonSummary{ID: primitive.NewObjectID(), Name: "InnovateX", Mode: models.ModeOffline}

	regs := []models.Registration{{
		ID:               primitive.NewObjectID(),
		Hackathon:        hack.ID,
		User:             student.ID,
		RegistrationDate: time.Now().Add(-time.Hour),
	}}
	apps := []models.Application{{
		ID:        primitive.NewObjectID(),
		Hackathon: hack.ID,
		Student:   student.ID,
		Status:    models.StatusApproved,
		CreatedAt: time.Now(),
	}}

	rows := mergeParticipants(regs, apps,
		summariesFor([]models.UserSummary{student}),
		hackSummariesFor([]models.HackathonSummary{hack}))

	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}
	if rows[0].Status != models.StatusApproved {
		t.Errorf("expected application status %q to win, got %q", models.StatusApproved, rows[0].Status)
	}
	if rows[0].ID != apps[0].ID {
		t.Errorf("expected row to carry the application ID")
	}
}

func TestMergeParticipants_RegistrationOnly(t *testing.T) {
	student := models.UserSummary{ID: primitive.NewObjectID(), Name: "Ravi"}
	hack := models.HackathonSummary{ID: primitive.NewObjectID(), Name: "HackFest"}

	regs := []models.Registration{{
		ID:               primitive.NewObjectID(),
		Hackathon:        hack.ID,
		User:             student.ID,
		RegistrationDate: time.Now(),
	}}

	rows := mergeParticipants(regs, nil,
		summariesFor([]models.UserSummary{student}),
		hackSummariesFor([]models.HackathonSummary{hack}))

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Status != statusRegistered {
		t.Errorf("expected status %q, got %q", statusRegistered, rows[0].Status)
	}
}

func TestMergeParticipants_SkipsOrphanedRecords(t *testing.T) {
	known := models.UserSummary{ID: primitive.NewObjectID(), Name: "Known"}
	hack := models.HackathonSummary{ID: primitive.NewObjectID(), Name: "HackFest"}
	users := summariesFor([]models.UserSummary{known})
	hacks := hackSummariesFor([]models.HackathonSummary{hack})

	regs := []models.Registration{
		{ID: primitive.NewObjectID(), Hackathon: hack.ID, User: primitive.NewObjectID()}, // deleted user
		{ID: primitive.NewObjectID(), Hackathon: hack.ID, User: known.ID},
	}
	apps := []models.Application{
		{ID: primitive.NewObjectID(), Hackathon: primitive.NewObjectID(), Student: known.ID}, // deleted hackathon
	}

	rows := mergeParticipants(regs, apps, users, hacks)

	if len(rows) != 1 {
		t.Fatalf("expected only the fully-resolved row, got %d rows", len(rows))
	}
	if rows[0].StudentID != known.ID {
		t.Errorf("unexpected row emitted: %+v", rows[0])
	}
}

func TestMergeParticipants_DistinctPairsKept(t *testing.T) {
	student := models.UserSummary{ID: primitive.NewObjectID()}
	hackA := models.HackathonSummary{ID: primitive.NewObjectID(), Name: "A"}
	hackB := models.HackathonSummary{ID: primitive.NewObjectID(), Name: "B"}

	regs := []models.Registration{{ID: primitive.NewObjectID(), Hackathon: hackA.ID, User: student.ID}}
	apps := []models.Application{{ID: primitive.NewObjectID(), Hackathon: hackB.ID, Student: student.ID, Status: models.StatusPending}}

	rows := mergeParticipants(regs, apps,
		summariesFor([]models.UserSummary{student}),
		hackSummariesFor([]models.HackathonSummary{hackA, hackB}))

	if len(rows) != 2 {
		t.Fatalf("different hackathons must not collapse: got %d rows", len(rows))
	}
}

func TestMergeParticipants_EmptyStatusFallsBack(t *testing.T) {
	student := models.UserSummary{ID: primitive.NewObjectID()}
	hack := models.HackathonSummary{ID: primitive.NewObjectID()}

	apps := []models.Application{{ID: primitive.NewObjectID(), Hackathon: hack.ID, Student: student.ID}}

	rows := mergeParticipants(nil, apps,
		summariesFor([]models.UserSummary{student}),
		hackSummariesFor([]models.HackathonSummary{hack}))

	if len(rows) != 1 || rows[0].Status != statusAppliedLegacy {
		t.Fatalf("expected legacy fallback status %q, got %+v", statusAppliedLegacy, rows)
	}
}

func TestFilterParticipants(t *testing.T) {
	rows := []ParticipantRow{
		{Name: "a", Department: "CSE", Year: 3, Status: models.StatusApproved},
		{Name: "b", Department: "cse", Year: 2, Status: statusRegistered},
		{Name: "c", Department: "ECE", Year: 3, Status: models.StatusPending},
	}

	got := filterParticipants(append([]ParticipantRow(nil), rows...), "CSE", "", "")
	if len(got) != 2 {
		t.Errorf("department filter should be case-insensitive: got %d rows", len(got))
	}

	got = filterParticipants(append([]ParticipantRow(nil), rows...), "", "3", "")
	if len(got) != 2 {
		t.Errorf("year filter: expected 2 rows, got %d", len(got))
	}

	got = filterParticipants(append([]ParticipantRow(nil), rows...), "", "", models.StatusApproved)
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("status filter: expected only the approved row, got %+v", got)
	}

	got = filterParticipants(append([]ParticipantRow(nil), rows...), "", "", "all")
	if len(got) != 3 {
		t.Errorf("status \"all\" must not filter: got %d rows", len(got))
	}

	got = filterParticipants(append([]ParticipantRow(nil), rows...), "CSE", "3", models.StatusApproved)
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("combined filters: expected one row, got %+v", got)
	}
}
