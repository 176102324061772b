// Package resolve attaches referenced entities ("population") to records
// that carry raw foreign keys. It resolves in batch by default and falls
// back to per-record lookups only when the batch pass joins nothing at
// all while references exist, which signals a silently failed join
// rather than ordinary missing targets.
package resolve

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Resolver fetches referenced entities by ID, in batch or one at a time.
type Resolver[T any] interface {
	// BatchResolve fetches all entities for ids in one query and
	// returns them keyed by ID. Missing targets are simply absent.
	BatchResolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]T, error)

	// PerRecordResolve fetches a single entity.
	PerRecordResolve(ctx context.Context, id primitive.ObjectID) (T, error)
}

// Attach resolves ids using r. The batch strategy is the default; the
// per-record strategy runs only on the all-zero-success signal (batch
// joined no records while ids exist). Individual lookup failures degrade
// that single reference, never the whole call.
func Attach[T any](ctx context.Context, r Resolver[T], ids []primitive.ObjectID) map[primitive.ObjectID]T {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return map[primitive.ObjectID]T{}
	}

	found, err := r.BatchResolve(ctx, ids)
	if err != nil {
		zap.L().Warn("batch resolve failed", zap.Int("refs", len(ids)), zap.Error(err))
		found = nil
	}
	if len(found) > 0 {
		return found
	}

	// Zero joined records with references present: resolve each one
	// independently. This is a correctness safety net, not a
	// performance path.
	out := make(map[primitive.ObjectID]T, len(ids))
	for _, id := range ids {
		v, err := r.PerRecordResolve(ctx, id)
		if err != nil {
			continue
		}
		out[id] = v
	}
	return out
}

func dedupe(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
