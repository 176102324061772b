package resolve

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeResolver counts strategy invocations so tests can assert which
// path ran.
type fakeResolver struct {
	batch        map[primitive.ObjectID]string
	batchErr     error
	perRecord    map[primitive.ObjectID]string
	batchCalls   int
	perRecCalls  int
	perRecErrFor map[primitive.ObjectID]bool
}

func (f *fakeResolver) BatchResolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	f.batchCalls++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := map[primitive.ObjectID]string{}
	for _, id := range ids {
		if v, ok := f.batch[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (f *fakeResolver) PerRecordResolve(ctx context.Context, id primitive.ObjectID) (string, error) {
	f.perRecCalls++
	if f.perRecErrFor[id] {
		return "", errors.New("lookup failed")
	}
	v, ok := f.perRecord[id]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func TestAttach_BatchIsTheDefaultPath(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	f := &fakeResolver{batch: map[primitive.ObjectID]string{a: "A", b: "B"}}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{a, b})

	if len(got) != 2 || got[a] != "A" || got[b] != "B" {
		t.Fatalf("unexpected result: %v", got)
	}
	if f.perRecCalls != 0 {
		t.Errorf("per-record path must not run when batch joined records, ran %d times", f.perRecCalls)
	}
}

func TestAttach_PartialBatchDoesNotTriggerFallback(t *testing.T) {
	a, missing := primitive.NewObjectID(), primitive.NewObjectID()
	f := &fakeResolver{
		batch:     map[primitive.ObjectID]string{a: "A"},
		perRecord: map[primitive.ObjectID]string{missing: "should not appear"},
	}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{a, missing})

	// One joined record means the batch worked; the missing target is
	// an ordinary deleted reference, not a failed join.
	if f.perRecCalls != 0 {
		t.Errorf("fallback must only trigger on zero batch successes")
	}
	if _, ok := got[missing]; ok {
		t.Errorf("missing target should stay missing")
	}
}

func TestAttach_ZeroJoinedTriggersPerRecordFallback(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	f := &fakeResolver{
		batch:     map[primitive.ObjectID]string{},
		perRecord: map[primitive.ObjectID]string{a: "A", b: "B"},
	}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{a, b})

	if f.batchCalls != 1 {
		t.Errorf("batch should still be attempted first")
	}
	if f.perRecCalls != 2 {
		t.Errorf("expected per-record fallback for each id, got %d calls", f.perRecCalls)
	}
	if got[a] != "A" || got[b] != "B" {
		t.Errorf("fallback results missing: %v", got)
	}
}

func TestAttach_BatchErrorFallsBackToPerRecord(t *testing.T) {
	a := primitive.NewObjectID()
	f := &fakeResolver{
		batchErr:  errors.New("cursor failed"),
		perRecord: map[primitive.ObjectID]string{a: "A"},
	}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{a})

	if got[a] != "A" {
		t.Fatalf("expected fallback to recover after batch error, got %v", got)
	}
}

func TestAttach_SingleFailureDegradesSingleRef(t *testing.T) {
	good, bad := primitive.NewObjectID(), primitive.NewObjectID()
	f := &fakeResolver{
		batch:        map[primitive.ObjectID]string{},
		perRecord:    map[primitive.ObjectID]string{good: "G"},
		perRecErrFor: map[primitive.ObjectID]bool{bad: true},
	}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{good, bad})

	if got[good] != "G" {
		t.Errorf("good ref should resolve despite the failing one")
	}
	if _, ok := got[bad]; ok {
		t.Errorf("failed ref should be absent, not zero-valued")
	}
}

func TestAttach_DedupesAndSkipsZeroIDs(t *testing.T) {
	a := primitive.NewObjectID()
	f := &fakeResolver{batch: map[primitive.ObjectID]string{a: "A"}}

	got := Attach[string](context.Background(), f, []primitive.ObjectID{a, a, primitive.NilObjectID})

	if len(got) != 1 {
		t.Fatalf("expected 1 resolved ref, got %d", len(got))
	}
	if f.batchCalls != 1 {
		t.Errorf("expected a single batch call")
	}
}

func TestAttach_EmptyIDs(t *testing.T) {
	f := &fakeResolver{}
	got := Attach[string](context.Background(), f, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
	if f.batchCalls != 0 || f.perRecCalls != 0 {
		t.Errorf("no resolution should run for zero ids")
	}
}
