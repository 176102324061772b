package hackathonstore

import (
	"context"
	"time"

	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("hackathons")}
}

// Create inserts a new hackathon and returns it with its generated ID.
func (s *Store) Create(ctx context.Context, h models.Hackathon) (models.Hackathon, error) {
	h.ID = primitive.NewObjectID()
	now := time.Now()
	h.CreatedAt = now
	h.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.Hackathon{}, err
	}
	return h, nil
}

// GetByID loads a hackathon by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Hackathon, error) {
	var h models.Hackathon
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns all hackathons, newest first.
func (s *Store) List(ctx context.Context) ([]models.Hackathon, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Hackathon
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDs loads hackathons by ID, keyed by ID. Missing IDs are simply
// absent from the result.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Hackathon, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]models.Hackathon{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]models.Hackathon, len(ids))
	for cur.Next(ctx) {
		var h models.Hackathon
		if err := cur.Decode(&h); err != nil {
			return nil, err
		}
		out[h.ID] = h
	}
	return out, cur.Err()
}

// Update holds the mutable fields of a hackathon. Nil slices/empty
// strings mean "leave unchanged"; Poster is only set when a new file
// was uploaded.
type Update struct {
	Name                string
	Organizer           string
	Dates               []time.Time
	Mode                string
	Description         string
	Location            string
	PrizePool           string
	Themes              []string
	RegistrationLink    string
	EligibleDepartments []string
	Eligibility         string
	CollegeDBLink       string
	Poster              string
}

// Apply updates a hackathon in place and returns the updated document.
// Returns mongo.ErrNoDocuments if the hackathon does not exist.
func (s *Store) Apply(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Hackathon, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Organizer != "" {
		set["organizer"] = upd.Organizer
	}
	if upd.Dates != nil {
		set["dates"] = upd.Dates
	}
	if upd.Mode != "" {
		set["mode"] = upd.Mode
	}
	if upd.Description != "" {
		set["description"] = upd.Description
	}
	if upd.Location != "" {
		set["location"] = upd.Location
	}
	if upd.PrizePool != "" {
		set["prizePool"] = upd.PrizePool
	}
	if upd.Themes != nil {
		set["themes"] = upd.Themes
	}
	if upd.RegistrationLink != "" {
		set["registrationLink"] = upd.RegistrationLink
	}
	if upd.EligibleDepartments != nil {
		set["eligibleDepartments"] = upd.EligibleDepartments
	}
	if upd.Eligibility != "" {
		set["eligibility"] = upd.Eligibility
	}
	if upd.CollegeDBLink != "" {
		set["collegeDBLink"] = upd.CollegeDBLink
	}
	if upd.Poster != "" {
		set["poster"] = upd.Poster
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var h models.Hackathon
	if err := res.Decode(&h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Delete removes a hackathon by ID. Returns the number of documents
// deleted (0 or 1). Cascading deletion of applications is the caller's
// responsibility.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the total number of hackathons.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
