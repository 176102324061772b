package hackathonstore_test

import (
	"testing"
	"time"

	hackathonstore "github.com/sece-innovation/hackhub/internal/app/store/hackathons"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"github.com/sece-innovation/hackhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := hackathonstore.New(db)
	created, err := store.Create(ctx, models.Hackathon{
		Name:             "InnovateX",
		Dates:            []time.Time{time.Now().AddDate(0, 1, 0)},
		Mode:             models.ModeHybrid,
		Description:      "Flagship event",
		RegistrationLink: "https://example.com/r",
		CreatedBy:        primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("create did not assign an ID")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "InnovateX" || got.Mode != models.ModeHybrid {
		t.Errorf("unexpected hackathon: %+v", got)
	}
}

func TestApply_PartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := hackathonstore.New(db)
	fx := testutil.NewFixtures(t, db)
	hk := fx.CreateHackathon(ctx, "Before", models.ModeOnline, primitive.NewObjectID())

	updated, err := store.Apply(ctx, hk.ID, hackathonstore.Update{
		Name:   "After",
		Themes: []string{"AI", "IoT"},
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if updated.Name != "After" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Mode != models.ModeOnline {
		t.Errorf("untouched field changed: mode %q", updated.Mode)
	}
	if len(updated.Themes) != 2 {
		t.Errorf("themes not updated: %v", updated.Themes)
	}

	if _, err := store.Apply(ctx, primitive.NewObjectID(), hackathonstore.Update{Name: "X"}); err != mongo.ErrNoDocuments {
		t.Errorf("missing hackathon: got err %v, want ErrNoDocuments", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := hackathonstore.New(db)
	fx := testutil.NewFixtures(t, db)
	hk := fx.CreateHackathon(ctx, "Doomed", models.ModeOffline, primitive.NewObjectID())

	deleted, err := store.Delete(ctx, hk.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, hk.ID)
	if err != nil {
		t.Fatalf("repeat delete errored: %v", err)
	}
	if deleted != 0 {
		t.Errorf("repeat delete = %d, want 0", deleted)
	}
}

func TestGetByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := hackathonstore.New(db)
	fx := testutil.NewFixtures(t, db)
	a := fx.CreateHackathon(ctx, "A", models.ModeOnline, primitive.NewObjectID())
	b := fx.CreateHackathon(ctx, "B", models.ModeOffline, primitive.NewObjectID())

	got, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("get by ids failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 hackathons, got %d", len(got))
	}
	if got[a.ID].Name != "A" || got[b.ID].Name != "B" {
		t.Errorf("wrong records: %v", got)
	}
}
