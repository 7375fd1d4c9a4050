package identity

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	id "coursebay/pkg/domain"
	"coursebay/pkg/platform/sentinel"
)

// InMemoryAdminStore keeps admins in memory for tests/dev. Lookups return
// copies so callers never alias store state.
type InMemoryAdminStore struct {
	mu     sync.RWMutex
	admins map[id.AdminID]*Admin
}

// NewInMemoryAdminStore constructs an empty in-memory admin store.
func NewInMemoryAdminStore() *InMemoryAdminStore {
	return &InMemoryAdminStore{admins: make(map[id.AdminID]*Admin)}
}

func (s *InMemoryAdminStore) Create(_ context.Context, admin *Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if strings.EqualFold(existing.Email, admin.Email) {
			return fmt.Errorf("admin email taken: %w", sentinel.ErrConflict)
		}
	}
	s.admins[admin.ID] = copyAdmin(admin)
	return nil
}

func (s *InMemoryAdminStore) FindByID(_ context.Context, adminID id.AdminID) (*Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if admin, ok := s.admins[adminID]; ok {
		return copyAdmin(admin), nil
	}
	return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryAdminStore) FindByEmail(_ context.Context, email string) (*Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if strings.EqualFold(admin.Email, email) {
			return copyAdmin(admin), nil
		}
	}
	return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryAdminStore) AppendCreatedCourse(_ context.Context, adminID id.AdminID, courseID id.CourseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[adminID]
	if !ok {
		return fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
	}
	admin.CreatedCourseIDs = append(admin.CreatedCourseIDs, courseID)
	return nil
}

func (s *InMemoryAdminStore) RemoveCreatedCourse(_ context.Context, adminID id.AdminID, courseID id.CourseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[adminID]
	if !ok {
		return fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
	}
	admin.CreatedCourseIDs = slices.DeleteFunc(admin.CreatedCourseIDs, func(cid id.CourseID) bool {
		return cid == courseID
	})
	return nil
}

func copyAdmin(a *Admin) *Admin {
	clone := *a
	clone.CreatedCourseIDs = slices.Clone(a.CreatedCourseIDs)
	return &clone
}

// InMemoryUserStore keeps users in memory for tests/dev.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[id.UserID]*User
}

// NewInMemoryUserStore constructs an empty in-memory user store.
func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[id.UserID]*User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("user email taken: %w", sentinel.ErrConflict)
		}
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID id.UserID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[userID]; ok {
		return copyUser(user), nil
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return copyUser(user), nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryUserStore) AppendPurchasedCourse(_ context.Context, userID id.UserID, courseID id.CourseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
	}
	user.PurchasedCourseIDs = append(user.PurchasedCourseIDs, courseID)
	return nil
}

func copyUser(u *User) *User {
	clone := *u
	clone.PurchasedCourseIDs = slices.Clone(u.PurchasedCourseIDs)
	return &clone
}
