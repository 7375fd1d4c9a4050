package course

import (
	"context"

	id "coursebay/pkg/domain"
)

// Error contract: store methods return sentinel.ErrNotFound when the course
// does not exist and wrapped infrastructure errors otherwise. Services
// translate these into domain errors.

// Store persists course records.
type Store interface {
	Create(ctx context.Context, course *Course) error
	FindByID(ctx context.Context, courseID id.CourseID) (*Course, error)
	Delete(ctx context.Context, courseID id.CourseID) error
	// ReplaceContent swaps the whole ordered content sequence. Content edits
	// are read-modify-write under the service's transaction.
	ReplaceContent(ctx context.Context, courseID id.CourseID, content []ContentItem) error
	List(ctx context.Context) ([]Course, error)
}
