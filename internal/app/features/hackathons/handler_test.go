package hackathons_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sece-innovation/hackhub/internal/app/features/hackathons"
	applicationstore "github.com/sece-innovation/hackhub/internal/app/store/applications"
	registrationstore "github.com/sece-innovation/hackhub/internal/app/store/registrations"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"github.com/sece-innovation/hackhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// The participant and delete paths never touch file storage, so a nil
// store is fine here.
func newTestHandler(t *testing.T) (*hackathons.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return hackathons.NewHandler(db, nil, zap.NewNop()), testutil.NewFixtures(t, db)
}

func fetchParticipants(t *testing.T, h *hackathons.Handler, query string) []hackathons.ParticipantRow {
	t.Helper()
	req := testutil.WithUser(
		testutil.NewRequest("GET", "/hackathons/participants"+query),
		testutil.CoordinatorUser())
	rec := httptest.NewRecorder()
	h.HandleParticipants(rec, req)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var rows []hackathons.ParticipantRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return rows
}

func TestParticipants_ApplicationWinsOverRegistration(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	student := fx.CreateStudent(ctx, "Ravi", "ravi@example.com", "21CS001", "CSE", 3)
	hack := fx.CreateHackathon(ctx, "Smart India Hackathon", "offline", coord.ID)

	fx.CreateRegistration(ctx, hack.ID, student.ID)
	fx.CreateApplication(ctx, hack.ID, student.ID, models.StatusApproved)

	rows := fetchParticipants(t, h, "")
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Status != models.StatusApproved {
		t.Errorf("status = %q, want %q", rows[0].Status, models.StatusApproved)
	}
	if rows[0].Name != "Ravi" || rows[0].RollNumber != "21CS001" {
		t.Errorf("student fields not resolved: %+v", rows[0])
	}
	if rows[0].Hackathon.Name != "Smart India Hackathon" {
		t.Errorf("hackathon not resolved: %+v", rows[0].Hackathon)
	}
}

func TestParticipants_RegistrationOnlyShowsRegistered(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	student := fx.CreateStudent(ctx, "Meena", "meena@example.com", "21EC002", "ECE", 2)
	hack := fx.CreateHackathon(ctx, "Hack the Campus", "online", coord.ID)
	fx.CreateRegistration(ctx, hack.ID, student.ID)

	rows := fetchParticipants(t, h, "")
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Status != "registered" {
		t.Errorf("status = %q, want registered", rows[0].Status)
	}
}

func TestParticipants_OrphanedRecordsDropped(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	hack := fx.CreateHackathon(ctx, "Ghost Hack", "online", coord.ID)

	// Registration whose student was since deleted.
	fx.CreateRegistration(ctx, hack.ID, primitive.NewObjectID())

	rows := fetchParticipants(t, h, "")
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0 (orphan must be dropped)", len(rows))
	}
}

func TestParticipants_Filters(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	cse := fx.CreateStudent(ctx, "A", "a@example.com", "21CS001", "CSE", 3)
	ece := fx.CreateStudent(ctx, "B", "b@example.com", "21EC002", "ECE", 2)
	hack := fx.CreateHackathon(ctx, "Filter Hack", "online", coord.ID)
	other := fx.CreateHackathon(ctx, "Other Hack", "online", coord.ID)

	fx.CreateApplication(ctx, hack.ID, cse.ID, models.StatusPending)
	fx.CreateApplication(ctx, hack.ID, ece.ID, models.StatusApproved)
	fx.CreateApplication(ctx, other.ID, cse.ID, models.StatusPending)

	if rows := fetchParticipants(t, h, "?department=cse"); len(rows) != 2 {
		t.Errorf("department filter rows = %d, want 2", len(rows))
	}
	if rows := fetchParticipants(t, h, "?year=2"); len(rows) != 1 {
		t.Errorf("year filter rows = %d, want 1", len(rows))
	}
	if rows := fetchParticipants(t, h, "?status=approved"); len(rows) != 1 {
		t.Errorf("status filter rows = %d, want 1", len(rows))
	}
	if rows := fetchParticipants(t, h, "?status=all"); len(rows) != 3 {
		t.Errorf("status=all rows = %d, want 3", len(rows))
	}
	if rows := fetchParticipants(t, h, "?hackathonId="+hack.ID.Hex()); len(rows) != 2 {
		t.Errorf("hackathonId filter rows = %d, want 2", len(rows))
	}
}

func TestParticipants_BadHackathonID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithUser(
		testutil.NewRequest("GET", "/hackathons/participants?hackathonId=nope"),
		testutil.CoordinatorUser())
	rec := httptest.NewRecorder()
	h.HandleParticipants(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid hackathonId") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDelete_CascadesApplicationsOnly(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	student := fx.CreateStudent(ctx, "C", "c@example.com", "21ME003", "MECH", 4)
	hack := fx.CreateHackathon(ctx, "Doomed Hack", "offline", coord.ID)
	fx.CreateApplication(ctx, hack.ID, student.ID, models.StatusPending)
	fx.CreateRegistration(ctx, hack.ID, student.ID)

	req := testutil.WithChiURLParam(
		testutil.WithUser(testutil.NewRequest("DELETE", "/hackathons/"+hack.ID.Hex()), testutil.CoordinatorUser()),
		"id", hack.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	apps, err := applicationstore.New(fx.DB()).List(ctx, &hack.ID)
	if err != nil {
		t.Fatalf("list applications: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("applications remaining = %d, want 0", len(apps))
	}

	regs, err := registrationstore.New(fx.DB()).List(ctx, &hack.ID)
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(regs) != 1 {
		t.Errorf("registrations remaining = %d, want 1 (audit trail kept)", len(regs))
	}
}

func TestDelete_UnknownHackathon(t *testing.T) {
	h, _ := newTestHandler(t)

	id := primitive.NewObjectID().Hex()
	req := testutil.WithChiURLParam(
		testutil.WithUser(testutil.NewRequest("DELETE", "/hackathons/"+id), testutil.CoordinatorUser()),
		"id", id)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
