package stats_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/sece-innovation/hackhub/internal/app/features/stats"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"github.com/sece-innovation/hackhub/internal/testutil"
	"go.uber.org/zap"
)

func TestDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	h := stats.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	coord := fx.CreateCoordinator(ctx, "Coord", "coord@example.com")
	s1 := fx.CreateStudent(ctx, "A", "a@example.com", "21CS001", "CSE", 3)
	s2 := fx.CreateStudent(ctx, "B", "b@example.com", "21EC002", "ECE", 2)
	h1 := fx.CreateHackathon(ctx, "Hack One", "online", coord.ID)
	h2 := fx.CreateHackathon(ctx, "Hack Two", "offline", coord.ID)

	fx.CreateApplication(ctx, h1.ID, s1.ID, models.StatusApproved)
	fx.CreateApplication(ctx, h2.ID, s1.ID, models.StatusPending)
	fx.CreateApplication(ctx, h1.ID, s2.ID, models.StatusPending)

	req := testutil.WithUser(testutil.NewRequest("GET", "/stats/dashboard"), testutil.CoordinatorUser())
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalHackathons      int64 `json:"totalHackathons"`
		TotalApplications    int64 `json:"totalApplications"`
		PendingApprovals     int64 `json:"pendingApprovals"`
		ApprovedApplications int64 `json:"approvedApplications"`
		TotalParticipants    int64 `json:"totalParticipants"`
		YearWiseData         []struct {
			ID    any   `json:"_id"`
			Count int64 `json:"count"`
		} `json:"yearWiseData"`
		DepartmentWiseData []struct {
			ID    any   `json:"_id"`
			Count int64 `json:"count"`
		} `json:"departmentWiseData"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if resp.TotalHackathons != 2 {
		t.Errorf("totalHackathons = %d, want 2", resp.TotalHackathons)
	}
	if resp.TotalApplications != 3 {
		t.Errorf("totalApplications = %d, want 3", resp.TotalApplications)
	}
	if resp.PendingApprovals != 2 {
		t.Errorf("pendingApprovals = %d, want 2", resp.PendingApprovals)
	}
	if resp.ApprovedApplications != 1 {
		t.Errorf("approvedApplications = %d, want 1", resp.ApprovedApplications)
	}
	if resp.TotalParticipants != 2 {
		t.Errorf("totalParticipants = %d, want 2", resp.TotalParticipants)
	}
	if len(resp.YearWiseData) != 2 {
		t.Errorf("yearWiseData groups = %d, want 2", len(resp.YearWiseData))
	}
	if len(resp.DepartmentWiseData) != 2 {
		t.Errorf("departmentWiseData groups = %d, want 2", len(resp.DepartmentWiseData))
	}
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := stats.NewHandler(db, zap.NewNop())

	req := testutil.WithUser(testutil.NewRequest("GET", "/stats/dashboard"), testutil.CoordinatorUser())
	rec := httptest.NewRecorder()
	h.HandleDashboard(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["yearWiseData"] == nil || resp["departmentWiseData"] == nil {
		t.Error("aggregation arrays must be empty, not null")
	}
}
