package course

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "coursebay/pkg/domain"
	"coursebay/pkg/platform/sentinel"
)

func newStoredCourse() *Course {
	return &Course{
		ID:          id.NewCourseID(),
		Name:        "Intro to Analytical Engines",
		Description: "Programming the first general-purpose computer.",
		Author:      "Ada Lovelace",
		Cost:        4900,
		CreatorID:   id.NewAdminID(),
	}
}

func TestInMemoryStore_CreateAndFind(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	c := newStoredCourse()

	require.NoError(t, store.Create(ctx, c))

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, found.Name)

	_, err = store.FindByID(ctx, id.NewCourseID())
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	c := newStoredCourse()
	require.NoError(t, store.Create(ctx, c))

	require.NoError(t, store.Delete(ctx, c.ID))
	assert.True(t, errors.Is(store.Delete(ctx, c.ID), sentinel.ErrNotFound))
}

func TestInMemoryStore_ReplaceContent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	c := newStoredCourse()
	require.NoError(t, store.Create(ctx, c))

	content := []ContentItem{{
		Title:    "Punched card basics",
		Body:     "How operations are encoded on cards.",
		Duration: "12m",
		VideoURL: "https://videos.example.com/cards",
	}}
	require.NoError(t, store.ReplaceContent(ctx, c.ID, content))

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, content, found.Content)

	err = store.ReplaceContent(ctx, id.NewCourseID(), content)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInMemoryStore_ListOrder(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	first := newStoredCourse()
	second := newStoredCourse()
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	courses, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, first.ID, courses[0].ID)
	assert.Equal(t, second.ID, courses[1].ID)

	require.NoError(t, store.Delete(ctx, first.ID))
	courses, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, second.ID, courses[0].ID)
}

func TestInMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	c := newStoredCourse()
	require.NoError(t, store.Create(ctx, c))
	require.NoError(t, store.ReplaceContent(ctx, c.ID, []ContentItem{{Title: "A", Body: "B"}}))

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	found.Name = "mutated"
	found.Content[0].Title = "mutated"

	again, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, again.Name)
	assert.Equal(t, "A", again.Content[0].Title)
}
