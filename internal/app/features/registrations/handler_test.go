package registrations_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sece-innovation/hackhub/internal/app/features/registrations"
	"github.com/sece-innovation/hackhub/internal/app/system/indexes"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"github.com/sece-innovation/hackhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*registrations.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return registrations.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestCreate_IdempotentRepeat(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	student := fx.CreateStudent(ctx, "Ravi", "ravi@example.com", "21CS001", "CSE", 3)
	hack := fx.CreateHackathon(ctx, "Register Hack", "online", coord.ID)
	user := testutil.UserFor(student)

	body := `{"hackathon":"` + hack.ID.Hex() + `"}`
	req := testutil.WithUser(httptest.NewRequest("POST", "/registrations", strings.NewReader(body)), user)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)
	if rec.Code != 201 {
		t.Fatalf("first create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var first models.Registration
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	req = testutil.WithUser(httptest.NewRequest("POST", "/registrations", strings.NewReader(body)), user)
	rec = httptest.NewRecorder()
	h.HandleCreate(rec, req)
	if rec.Code != 200 {
		t.Fatalf("repeat create status = %d, want 200, body = %s", rec.Code, rec.Body.String())
	}
	var second models.Registration
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("repeat click created a new record: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}
}

func TestCreate_UnknownHackathon(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fx.CreateStudent(ctx, "Ravi", "ravi@example.com", "21CS001", "CSE", 3)

	body := `{"hackathon":"` + primitive.NewObjectID().Hex() + `"}`
	req := testutil.WithUser(httptest.NewRequest("POST", "/registrations", strings.NewReader(body)), testutil.UserFor(student))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestList_StudentSeesOnlyTheirOwn(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	mine := fx.CreateStudent(ctx, "Mine", "mine@example.com", "21CS001", "CSE", 3)
	other := fx.CreateStudent(ctx, "Other", "other@example.com", "21EC002", "ECE", 2)
	hack := fx.CreateHackathon(ctx, "List Hack", "online", coord.ID)
	fx.CreateRegistration(ctx, hack.ID, mine.ID)
	fx.CreateRegistration(ctx, hack.ID, other.ID)

	req := testutil.WithUser(testutil.NewRequest("GET", "/registrations"), testutil.UserFor(mine))
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
}

func TestList_CoordinatorSeesAllResolved(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	a := fx.CreateStudent(ctx, "A", "a@example.com", "21CS001", "CSE", 3)
	b := fx.CreateStudent(ctx, "B", "b@example.com", "21EC002", "ECE", 2)
	hack := fx.CreateHackathon(ctx, "All Hack", "offline", coord.ID)
	fx.CreateRegistration(ctx, hack.ID, a.ID)
	fx.CreateRegistration(ctx, hack.ID, b.ID)

	req := testutil.WithUser(testutil.NewRequest("GET", "/registrations"), testutil.CoordinatorUser())
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	userObj, ok := rows[0]["user"].(map[string]any)
	if !ok {
		t.Fatalf("user not resolved: %v", rows[0]["user"])
	}
	if userObj["name"] == "" {
		t.Error("resolved user has no name")
	}
}
