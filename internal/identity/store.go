package identity

import (
	"context"

	id "coursebay/pkg/domain"
)

// Error contract: store methods return sentinel.ErrNotFound when the entity
// does not exist, sentinel.ErrConflict on a uniqueness violation (email),
// and wrapped infrastructure errors otherwise. Services translate these into
// domain errors.

// AdminStore persists admin credential records and the denormalized
// created-course list.
type AdminStore interface {
	Create(ctx context.Context, admin *Admin) error
	FindByID(ctx context.Context, adminID id.AdminID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	AppendCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error
	RemoveCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error
}

// UserStore persists user credential records and the denormalized
// purchased-course list.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID id.UserID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	AppendPurchasedCourse(ctx context.Context, userID id.UserID, courseID id.CourseID) error
}
