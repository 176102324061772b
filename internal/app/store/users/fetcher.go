// internal/app/store/users/fetcher.go
package userstore

import (
	"context"

	"github.com/sece-innovation/hackhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher resolves token subjects to identities for the auth
// middleware, so role changes and profile edits take effect on the
// next request rather than at the next login.
type Fetcher struct {
	s *Store
}

func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{s: New(db)}
}

// LookupAuthUser implements auth.UserLookup.
func (f *Fetcher) LookupAuthUser(ctx context.Context, id string) (*auth.AuthUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	u, err := f.s.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &auth.AuthUser{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Year:       u.Year,
		Section:    u.Section,
	}, nil
}
