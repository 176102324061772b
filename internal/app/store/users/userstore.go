package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/sece-innovation/hackhub/internal/app/system/normalize"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "student"|"coordinator"|"student_admin"`)
	errStudentFields  = errors.New("student must have rollNumber, year, and section")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
// The caller is responsible for hashing the password.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.Email = normalize.Email(u.Email)

	switch u.Role {
	case models.RoleStudent, models.RoleCoordinator, models.RoleStudentAdmin:
		// ok
	default:
		return models.User{}, errBadRole
	}

	if u.IsStudent() {
		if u.RollNumber == "" || u.Year == 0 || u.Section == "" {
			return models.User{}, errStudentFields
		}
		if u.Department == "" {
			u.Department = models.DefaultDepartment
		}
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateYearSection refreshes a student's year and section, skipping
// zero values. Called on each student login.
func (s *Store) UpdateYearSection(ctx context.Context, id primitive.ObjectID, year int, section string) error {
	set := bson.M{"updatedAt": time.Now()}
	if year > 0 {
		set["year"] = year
	}
	if section != "" {
		set["section"] = section
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "role": models.RoleStudent}, bson.M{"$set": set})
	return err
}

// CountStudentsByYear groups students by year for the dashboard.
func (s *Store) CountStudentsByYear(ctx context.Context) ([]GroupCount, error) {
	return s.aggregateStudents(ctx, "$year", bson.D{{Key: "_id", Value: 1}})
}

// CountStudentsByDepartment groups students by department for the dashboard.
func (s *Store) CountStudentsByDepartment(ctx context.Context) ([]GroupCount, error) {
	return s.aggregateStudents(ctx, "$department", nil)
}

// GroupCount is one bucket of a grouped student count.
type GroupCount struct {
	Key   any   `bson:"_id" json:"_id"`
	Count int64 `bson:"count" json:"count"`
}

func (s *Store) aggregateStudents(ctx context.Context, groupBy string, sort bson.D) ([]GroupCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": models.RoleStudent}}},
		{{Key: "$group", Value: bson.M{"_id": groupBy, "count": bson.M{"$sum": 1}}}},
	}
	if sort != nil {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []GroupCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
