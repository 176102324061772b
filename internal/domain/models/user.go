// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values for User.Role.
const (
	RoleStudent      = "student"
	RoleCoordinator  = "coordinator"
	RoleStudentAdmin = "student_admin"
)

// DefaultDepartment is applied to students who sign up without one.
const DefaultDepartment = "Computer Science and Engineering"

// User represents students and coordinators.
//
// Field names match the existing collections, which predate this service;
// do not rename bson tags without a migration.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"` // stored lowercase, unique
	Password string             `bson:"password" json:"-"`  // bcrypt hash
	Role     string             `bson:"role" json:"role"`   // student | coordinator | student_admin

	// Student-only profile fields. Year and Section are refreshed
	// opportunistically on each login.
	RollNumber string `bson:"rollNumber,omitempty" json:"rollNumber,omitempty"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Year       int    `bson:"year,omitempty" json:"year,omitempty"`
	Section    string `bson:"section,omitempty" json:"section,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsStudent returns true for the student role.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// UserSummary is the fixed projection of a User attached to populated
// records (applications, registrations, participant rows).
type UserSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	RollNumber string             `bson:"rollNumber,omitempty" json:"rollNumber,omitempty"`
	Department string             `bson:"department,omitempty" json:"department,omitempty"`
	Year       int                `bson:"year,omitempty" json:"year,omitempty"`
	Section    string             `bson:"section,omitempty" json:"section,omitempty"`
}
