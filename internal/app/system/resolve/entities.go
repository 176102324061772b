package resolve

import (
	"context"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var userProjection = bson.M{
	"name": 1, "email": 1, "rollNumber": 1, "department": 1, "year": 1, "section": 1,
}

var hackathonProjection = bson.M{
	"name": 1, "dates": 1, "mode": 1,
}

// Users resolves user references to the UserSummary projection.
type Users struct {
	c *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{c: db.Collection("users")}
}

func (u *Users) BatchResolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	cur, err := u.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(userProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	for cur.Next(ctx) {
		var s models.UserSummary
		if err := cur.Decode(&s); err != nil {
			continue
		}
		out[s.ID] = s
	}
	return out, cur.Err()
}

func (u *Users) PerRecordResolve(ctx context.Context, id primitive.ObjectID) (models.UserSummary, error) {
	var s models.UserSummary
	err := u.c.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(userProjection)).Decode(&s)
	return s, err
}

// Hackathons resolves hackathon references to the HackathonSummary projection.
type Hackathons struct {
	c *mongo.Collection
}

func NewHackathons(db *mongo.Database) *Hackathons {
	return &Hackathons{c: db.Collection("hackathons")}
}

func (h *Hackathons) BatchResolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.HackathonSummary, error) {
	cur, err := h.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(hackathonProjection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]models.HackathonSummary, len(ids))
	for cur.Next(ctx) {
		var s models.HackathonSummary
		if err := cur.Decode(&s); err != nil {
			continue
		}
		out[s.ID] = s
	}
	return out, cur.Err()
}

func (h *Hackathons) PerRecordResolve(ctx context.Context, id primitive.ObjectID) (models.HackathonSummary, error) {
	var s models.HackathonSummary
	err := h.c.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(hackathonProjection)).Decode(&s)
	return s, err
}
