package course

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"coursebay/internal/course/metrics"
	"coursebay/internal/identity"
	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/sentinel"
	"coursebay/pkg/platform/tx"
	"coursebay/pkg/requestcontext"
)

// AdminDirectory is the slice of the identity store the course lifecycle
// needs: creator lookup and the denormalized created-course list.
type AdminDirectory interface {
	FindByID(ctx context.Context, adminID id.AdminID) (*identity.Admin, error)
	AppendCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error
	RemoveCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error
}

// Service is the course lifecycle manager. Every mutating operation checks
// creator ownership, and every write that spans the course store and the
// admin's owned-course list runs in one transaction.
type Service struct {
	courses Store
	admins  AdminDirectory
	cache   CatalogCache
	tx      tx.Runner
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService wires the course service. Pass a nil metrics to disable
// instrumentation (tests).
func NewService(courses Store, admins AdminDirectory, cache CatalogCache, txRunner tx.Runner, m *metrics.Metrics, logger *slog.Logger) *Service {
	if cache == nil {
		cache = NoopCatalogCache{}
	}
	return &Service{
		courses: courses,
		admins:  admins,
		cache:   cache,
		tx:      txRunner,
		metrics: m,
		logger:  logger,
	}
}

// CreateCourseParams carries the validated course attributes.
type CreateCourseParams struct {
	Name        string
	Description string
	Cost        int64
}

// CreateCourse creates a course owned by adminID and appends its ID to the
// admin's created-course list, atomically. Identical params always produce a
// new course with a fresh ID; there is no dedup on course creation.
func (s *Service) CreateCourse(ctx context.Context, adminID id.AdminID, params CreateCourseParams) (*Course, error) {
	start := time.Now()

	var created *Course
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admin, err := s.admins.FindByID(txCtx, adminID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "admin not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up admin")
		}

		course := &Course{
			ID:          id.NewCourseID(),
			Name:        params.Name,
			Description: params.Description,
			Author:      admin.Name,
			Cost:        params.Cost,
			CreatorID:   adminID,
			Content:     []ContentItem{},
		}
		if err := s.courses.Create(txCtx, course); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create course")
		}
		if err := s.admins.AppendCreatedCourse(txCtx, adminID, course.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record course ownership")
		}
		created = course
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	if s.metrics != nil {
		s.metrics.IncrementCourseCreated()
		s.metrics.ObserveCreateCourse(start)
	}
	s.logger.InfoContext(ctx, "course created",
		"course_id", created.ID,
		"admin_id", adminID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return created, nil
}

// DeleteCourse deletes courseID and removes it from the creator's list,
// atomically. Only the creator may delete; a second delete reports not found.
func (s *Service) DeleteCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		course, err := s.findCourse(txCtx, courseID)
		if err != nil {
			return err
		}
		if !course.OwnedBy(adminID) {
			return dErrors.New(dErrors.CodeForbidden, "course is owned by another admin")
		}
		if err := s.courses.Delete(txCtx, courseID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "course not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete course")
		}
		if err := s.admins.RemoveCreatedCourse(txCtx, adminID, courseID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to release course ownership")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	if s.metrics != nil {
		s.metrics.IncrementCourseDeleted()
	}
	s.logger.InfoContext(ctx, "course deleted",
		"course_id", courseID,
		"admin_id", adminID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// AddContent appends item to the course's content sequence. Only the creator
// may add, and the (title, body) pair must be new within the course.
func (s *Service) AddContent(ctx context.Context, adminID id.AdminID, courseID id.CourseID, item ContentItem) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		course, err := s.findCourse(txCtx, courseID)
		if err != nil {
			return err
		}
		if !course.OwnedBy(adminID) {
			return dErrors.New(dErrors.CodeForbidden, "course is owned by another admin")
		}
		if course.ContainsContent(item.Title, item.Body) {
			return dErrors.New(dErrors.CodeConflict, "course content already exists")
		}
		if err := s.courses.ReplaceContent(txCtx, courseID, append(course.Content, item)); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add course content")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.logger.InfoContext(ctx, "course content added",
		"course_id", courseID,
		"admin_id", adminID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// RemoveContent removes every content item matching (title, body). Removal is
// idempotent: zero matches is a success that changes nothing. Only the
// creator may remove, mirroring AddContent.
func (s *Service) RemoveContent(ctx context.Context, adminID id.AdminID, courseID id.CourseID, title, body string) error {
	changed := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		course, err := s.findCourse(txCtx, courseID)
		if err != nil {
			return err
		}
		if !course.OwnedBy(adminID) {
			return dErrors.New(dErrors.CodeForbidden, "course is owned by another admin")
		}
		remaining := course.WithoutContent(title, body)
		if len(remaining) == len(course.Content) {
			return nil
		}
		if err := s.courses.ReplaceContent(txCtx, courseID, remaining); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove course content")
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		s.cache.Invalidate(ctx)
		s.logger.InfoContext(ctx, "course content removed",
			"course_id", courseID,
			"admin_id", adminID,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return nil
}

// GetCourse fetches a single course.
func (s *Service) GetCourse(ctx context.Context, courseID id.CourseID) (*Course, error) {
	return s.findCourse(ctx, courseID)
}

// ListCourses returns the public catalog, serving from the Redis cache when
// possible. An empty catalog is reported as not found.
func (s *Service) ListCourses(ctx context.Context) ([]Course, error) {
	courses, ok := s.cache.Get(ctx)
	if ok {
		if s.metrics != nil {
			s.metrics.IncrementCacheHit()
		}
	} else {
		if s.metrics != nil {
			s.metrics.IncrementCacheMiss()
		}
		var err error
		courses, err = s.courses.List(ctx)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list courses")
		}
		s.cache.Set(ctx, courses)
	}

	if len(courses) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no courses available yet")
	}
	return courses, nil
}

func (s *Service) findCourse(ctx context.Context, courseID id.CourseID) (*Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "course not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up course")
	}
	return course, nil
}
