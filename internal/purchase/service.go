package purchase

import (
	"context"
	"errors"
	"log/slog"

	"coursebay/internal/course"
	"coursebay/internal/identity"
	"coursebay/internal/purchase/metrics"
	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/sentinel"
	"coursebay/pkg/platform/tx"
	"coursebay/pkg/requestcontext"
)

// CourseDirectory is the slice of the course store the purchase flow needs.
type CourseDirectory interface {
	FindByID(ctx context.Context, courseID id.CourseID) (*course.Course, error)
}

// UserDirectory is the slice of the identity store the purchase flow needs:
// purchaser lookup and the denormalized purchased-course list.
type UserDirectory interface {
	FindByID(ctx context.Context, userID id.UserID) (*identity.User, error)
	AppendPurchasedCourse(ctx context.Context, userID id.UserID, courseID id.CourseID) error
}

// Service records purchases and reads them back. The ledger entry and the
// user's purchased-course list are written in one transaction.
type Service struct {
	purchases Store
	courses   CourseDirectory
	users     UserDirectory
	tx        tx.Runner
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService wires the purchase service. Pass a nil metrics to disable
// instrumentation (tests).
func NewService(purchases Store, courses CourseDirectory, users UserDirectory, txRunner tx.Runner, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		purchases: purchases,
		courses:   courses,
		users:     users,
		tx:        txRunner,
		metrics:   m,
		logger:    logger,
	}
}

// Purchase records that userID bought courseID. The course must exist, but
// nothing prevents buying the same course again; each call appends a fresh
// ledger entry and another course ID to the user's purchased list.
func (s *Service) Purchase(ctx context.Context, userID id.UserID, courseID id.CourseID) (*Purchase, error) {
	var recorded *Purchase
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.courses.FindByID(txCtx, courseID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "course not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up course")
		}
		if _, err := s.users.FindByID(txCtx, userID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "user not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
		}

		p := &Purchase{
			ID:          id.NewPurchaseID(),
			PurchaserID: userID,
			CourseID:    courseID,
			Date:        requestcontext.Now(txCtx),
		}
		if err := s.purchases.Create(txCtx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record purchase")
		}
		if err := s.users.AppendPurchasedCourse(txCtx, userID, courseID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record purchased course")
		}
		recorded = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementPurchaseRecorded()
	}
	s.logger.InfoContext(ctx, "purchase recorded",
		"purchase_id", recorded.ID,
		"course_id", courseID,
		"user_id", userID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return recorded, nil
}

// ListPurchases resolves the user's purchased-course list to full course
// records in purchase order. Courses deleted since the purchase are skipped
// rather than failing the whole listing.
func (s *Service) ListPurchases(ctx context.Context, userID id.UserID) ([]course.Course, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	courses := make([]course.Course, 0, len(user.PurchasedCourseIDs))
	for _, courseID := range user.PurchasedCourseIDs {
		c, err := s.courses.FindByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				continue
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up purchased course")
		}
		courses = append(courses, *c)
	}
	return courses, nil
}

// History returns the raw ledger entries for userID, oldest first.
func (s *Service) History(ctx context.Context, userID id.UserID) ([]Purchase, error) {
	purchases, err := s.purchases.ListByPurchaser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list purchases")
	}
	return purchases, nil
}
