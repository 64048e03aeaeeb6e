package service

import (
	"context"
	"testing"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/models"
	"github.com/farellandr/eventure/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.categories.Create(ctx, forms.CategoryInput{Name: "  Music ", Description: "Live shows"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Music", created.Name)

	got, err := f.categories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Live shows", got.Description)
}

func TestCategoryService_CreateEmptyName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.categories.Create(ctx, forms.CategoryInput{Name: "   "})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{forms.MsgRequired}, FieldErrors(err).Get("name"))

	list, err := f.categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCategoryService_CreateDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testdb.CreateCategory(t, f.db, "Music")

	_, err := f.categories.Create(ctx, forms.CategoryInput{Name: "Music"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"Category with this Name already exists."}, FieldErrors(err).Get("name"))
}

func TestCategoryService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	music := testdb.CreateCategory(t, f.db, "Music")
	testdb.CreateCategory(t, f.db, "Sports")

	// Keeping its own name is not a conflict.
	updated, err := f.categories.Update(ctx, music.ID, forms.CategoryInput{Name: "Music", Description: "Gigs"})
	require.NoError(t, err)
	assert.Equal(t, "Gigs", updated.Description)

	_, err = f.categories.Update(ctx, music.ID, forms.CategoryInput{Name: "Sports"})
	require.ErrorIs(t, err, ErrValidation)
	assert.True(t, FieldErrors(err).Has("name"))

	_, err = f.categories.Update(ctx, 999, forms.CategoryInput{Name: "Other"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	music := testdb.CreateCategory(t, f.db, "Music")
	testdb.CreateEvent(t, f.db, music, "Gig", "Hall", testdb.Date(2024, 3, 20), "20:00")

	require.NoError(t, f.categories.Delete(ctx, music.ID))

	var events int64
	require.NoError(t, f.db.Model(&models.Event{}).Count(&events).Error)
	assert.Zero(t, events)

	assert.ErrorIs(t, f.categories.Delete(ctx, music.ID), ErrNotFound)
}
