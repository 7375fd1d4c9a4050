package course

import (
	"context"
	"fmt"
	"slices"
	"sync"

	id "coursebay/pkg/domain"
	"coursebay/pkg/platform/sentinel"
)

// InMemoryStore keeps courses in memory for tests/dev. Lookups return copies
// so callers never alias store state.
type InMemoryStore struct {
	mu      sync.RWMutex
	courses map[id.CourseID]*Course
	order   []id.CourseID
}

// NewInMemoryStore constructs an empty in-memory course store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{courses: make(map[id.CourseID]*Course)}
}

func (s *InMemoryStore) Create(_ context.Context, course *Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = copyCourse(course)
	s.order = append(s.order, course.ID)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, courseID id.CourseID) (*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if course, ok := s.courses[courseID]; ok {
		return copyCourse(course), nil
	}
	return nil, fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) Delete(_ context.Context, courseID id.CourseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[courseID]; !ok {
		return fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
	}
	delete(s.courses, courseID)
	s.order = slices.DeleteFunc(s.order, func(cid id.CourseID) bool { return cid == courseID })
	return nil
}

func (s *InMemoryStore) ReplaceContent(_ context.Context, courseID id.CourseID, content []ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	course, ok := s.courses[courseID]
	if !ok {
		return fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
	}
	course.Content = slices.Clone(content)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// order preserves creation sequence
	courses := make([]Course, 0, len(s.courses))
	for _, cid := range s.order {
		if course, ok := s.courses[cid]; ok {
			courses = append(courses, *copyCourse(course))
		}
	}
	return courses, nil
}

func copyCourse(c *Course) *Course {
	clone := *c
	clone.Content = slices.Clone(c.Content)
	return &clone
}
