package purchase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursebay/internal/course"
	"coursebay/internal/identity"
	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/tx"
	"coursebay/pkg/requestcontext"
)

type fixture struct {
	svc     *Service
	ledger  *InMemoryStore
	courses *course.InMemoryStore
	users   *identity.InMemoryUserStore
	user    *identity.User
	course  *course.Course
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	ledger := NewInMemoryStore()
	courses := course.NewInMemoryStore()
	users := identity.NewInMemoryUserStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(ledger, courses, users, tx.NewMemoryRunner(), nil, logger)

	user := &identity.User{ID: id.NewUserID(), Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, users.Create(ctx, user))

	c := &course.Course{
		ID:          id.NewCourseID(),
		Name:        "Intro to Analytical Engines",
		Description: "Programming the first general-purpose computer.",
		Author:      "Ada Lovelace",
		Cost:        4900,
		CreatorID:   id.NewAdminID(),
	}
	require.NoError(t, courses.Create(ctx, c))

	return &fixture{svc: svc, ledger: ledger, courses: courses, users: users, user: user, course: c}
}

func TestPurchase(t *testing.T) {
	f := newFixture(t)
	purchaseTime := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), purchaseTime)

	recorded, err := f.svc.Purchase(ctx, f.user.ID, f.course.ID)
	require.NoError(t, err)
	assert.False(t, recorded.ID.IsZero())
	assert.Equal(t, f.user.ID, recorded.PurchaserID)
	assert.Equal(t, f.course.ID, recorded.CourseID)
	assert.Equal(t, purchaseTime, recorded.Date)

	// The user's purchased list records the course ID, not the ledger ID.
	user, err := f.users.FindByID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, []id.CourseID{f.course.ID}, user.PurchasedCourseIDs)
}

func TestPurchase_UnknownCourse(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Purchase(context.Background(), f.user.ID, id.NewCourseID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	// Nothing is recorded on failure.
	history, err := f.svc.History(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPurchase_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Purchase(context.Background(), id.NewUserID(), f.course.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestPurchase_RepeatCreatesSeparateEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Purchase(ctx, f.user.ID, f.course.ID)
	require.NoError(t, err)
	second, err := f.svc.Purchase(ctx, f.user.ID, f.course.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := f.svc.History(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	courses, err := f.svc.ListPurchases(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestListPurchases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Purchase(ctx, f.user.ID, f.course.ID)
	require.NoError(t, err)

	courses, err := f.svc.ListPurchases(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, f.course.ID, courses[0].ID)
	assert.Equal(t, "Intro to Analytical Engines", courses[0].Name)
}

func TestListPurchases_EmptyIsNotAnError(t *testing.T) {
	f := newFixture(t)

	courses, err := f.svc.ListPurchases(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListPurchases_DeletedCourseSkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	second := &course.Course{
		ID:          id.NewCourseID(),
		Name:        "Notes on the Difference Engine",
		Description: "Mechanical computation before electronics.",
		Author:      "Ada Lovelace",
		CreatorID:   id.NewAdminID(),
	}
	require.NoError(t, f.courses.Create(ctx, second))

	_, err := f.svc.Purchase(ctx, f.user.ID, f.course.ID)
	require.NoError(t, err)
	_, err = f.svc.Purchase(ctx, f.user.ID, second.ID)
	require.NoError(t, err)

	// A course deleted after purchase drops out of the listing; the rest
	// still resolve.
	require.NoError(t, f.courses.Delete(ctx, f.course.ID))

	courses, err := f.svc.ListPurchases(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, second.ID, courses[0].ID)
}

func TestListPurchases_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListPurchases(context.Background(), id.NewUserID())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
