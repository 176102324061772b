package userstore_test

import (
	"testing"

	userstore "github.com/sece-innovation/hackhub/internal/app/store/users"
	"github.com/sece-innovation/hackhub/internal/app/system/indexes"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"github.com/sece-innovation/hackhub/internal/testutil"
)

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	created, err := store.Create(ctx, models.User{
		Name:       "  Priya   Raman ",
		Email:      "Priya@Example.COM",
		Password:   "hash",
		Role:       models.RoleStudent,
		RollNumber: "21CS042",
		Year:       3,
		Section:    "B",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.Email != "priya@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.Name != "Priya Raman" {
		t.Errorf("name not normalized: %q", created.Name)
	}
	if created.Department != models.DefaultDepartment {
		t.Errorf("department default not applied: %q", created.Department)
	}

	// Lookup is case-insensitive via the same normalization.
	got, err := store.GetByEmail(ctx, "PRIYA@example.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("lookup returned a different user")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	store := userstore.New(db)

	u := models.User{
		Name:     "Coordinator",
		Email:    "coord@example.com",
		Password: "hash",
		Role:     models.RoleCoordinator,
	}
	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := store.Create(ctx, u); err != userstore.ErrDuplicateEmail {
		t.Fatalf("got err %v, want ErrDuplicateEmail", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{
		Name: "X", Email: "x@example.com", Password: "hash", Role: "superuser",
	}); err == nil {
		t.Error("unknown role accepted")
	}

	if _, err := store.Create(ctx, models.User{
		Name: "Y", Email: "y@example.com", Password: "hash", Role: models.RoleStudent,
	}); err == nil {
		t.Error("student without roll number, year, and section accepted")
	}
}

func TestStudentAggregations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)

	fx.CreateStudent(ctx, "A", "a@example.com", "R1", "CSE", 2)
	fx.CreateStudent(ctx, "B", "b@example.com", "R2", "CSE", 3)
	fx.CreateStudent(ctx, "C", "c@example.com", "R3", "ECE", 3)
	fx.CreateCoordinator(ctx, "Coord", "coord@example.com")

	byYear, err := store.CountStudentsByYear(ctx)
	if err != nil {
		t.Fatalf("year aggregation failed: %v", err)
	}
	if len(byYear) != 2 {
		t.Errorf("expected 2 year buckets, got %d", len(byYear))
	}

	byDept, err := store.CountStudentsByDepartment(ctx)
	if err != nil {
		t.Fatalf("department aggregation failed: %v", err)
	}
	total := int64(0)
	for _, g := range byDept {
		total += g.Count
	}
	if total != 3 {
		t.Errorf("coordinator leaked into student aggregation: total %d", total)
	}
}
