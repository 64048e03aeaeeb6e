package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/farellandr/eventure/internal/forms"
	"github.com/farellandr/eventure/internal/pagination"
	"github.com/farellandr/eventure/internal/repository"
	"github.com/farellandr/eventure/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_ListPaginates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := testdb.CreateCategory(t, f.db, "Any")
	for i := 1; i <= 12; i++ {
		testdb.CreateEvent(t, f.db, cat, fmt.Sprintf("event %02d", i), "Hall", testdb.Date(2024, 1, i), "10:00")
	}

	first, err := f.events.List(ctx, repository.EventFilter{}, "")
	require.NoError(t, err)
	assert.Len(t, first.Events, EventsPerPage)
	assert.Equal(t, "event 12", first.Events[0].Name)
	assert.Equal(t, 2, first.Page.NumPages)

	last, err := f.events.List(ctx, repository.EventFilter{}, "last")
	require.NoError(t, err)
	assert.Equal(t, []string{"event 02", "event 01"}, eventNames(last.Events))

	_, err = f.events.List(ctx, repository.EventFilter{}, "3")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, pagination.ErrInvalidPage)

	_, err = f.events.List(ctx, repository.EventFilter{}, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_ListEmpty(t *testing.T) {
	f := newFixture(t)

	page, err := f.events.List(context.Background(), repository.EventFilter{Text: "nothing"}, "1")
	require.NoError(t, err)
	assert.Empty(t, page.Events)
	assert.Equal(t, 1, page.Page.Number)
}

func TestEventService_SearchEchoesQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := testdb.CreateCategory(t, f.db, "Any")
	testdb.CreateEvent(t, f.db, cat, "Town Hall Meeting", "City", testdb.Date(2024, 1, 1), "10:00")
	testdb.CreateEvent(t, f.db, cat, "Picnic", "Central HALL", testdb.Date(2024, 1, 2), "10:00")
	testdb.CreateEvent(t, f.db, cat, "Run", "Park", testdb.Date(2024, 1, 3), "10:00")

	res, err := f.events.Search(ctx, "hall")
	require.NoError(t, err)
	assert.Equal(t, "hall", res.Query)
	assert.Equal(t, []string{"Picnic", "Town Hall Meeting"}, eventNames(res.Events))

	res, err = f.events.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "", res.Query)
	assert.Len(t, res.Events, 3)
}

func TestEventService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := testdb.CreateCategory(t, f.db, "Any")

	in := forms.EventInput{
		Name:     "Gig",
		Date:     "2024-03-20",
		Time:     "20:00",
		Location: "Hall",
		Category: fmt.Sprint(cat.ID),
	}
	created, err := f.events.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.events.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gig", got.Name)
	assert.Equal(t, "Any", got.Category.Name)
	assert.Equal(t, "20:00:00", got.Time.String())
	assert.False(t, f.events.IsPast(got))
}

func TestEventService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.events.Create(ctx, forms.EventInput{})
	require.ErrorIs(t, err, ErrValidation)
	fields := FieldErrors(err)
	for _, name := range []string{"name", "date", "time", "location", "category"} {
		assert.True(t, fields.Has(name), name)
	}

	_, err = f.events.Create(ctx, forms.EventInput{
		Name: "Gig", Date: "2024-03-20", Time: "20:00", Location: "Hall", Category: "42",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{forms.MsgInvalidPick}, FieldErrors(err).Get("category"))
}

func TestEventService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	music := testdb.CreateCategory(t, f.db, "Music")
	sports := testdb.CreateCategory(t, f.db, "Sports")
	event := testdb.CreateEvent(t, f.db, music, "Gig", "Hall", testdb.Date(2024, 3, 20), "20:00")

	in := forms.EventInputFrom(*event)
	in.Name = "Match"
	in.Category = fmt.Sprint(sports.ID)
	in.Date = "2024-03-01"
	_, err := f.events.Update(ctx, event.ID, in)
	require.NoError(t, err)

	got, err := f.events.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Match", got.Name)
	assert.Equal(t, "Sports", got.Category.Name)
	assert.True(t, f.events.IsPast(got))

	_, err = f.events.Update(ctx, 999, in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_DeleteKeepsParticipants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := testdb.CreateCategory(t, f.db, "Any")
	event := testdb.CreateEvent(t, f.db, cat, "Gig", "Hall", testdb.Date(2024, 3, 20), "20:00")
	p := testdb.CreateParticipant(t, f.db, "Ann", "ann@example.com", event)

	require.NoError(t, f.events.Delete(ctx, event.ID))

	got, err := f.participants.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Events)

	_, err = f.events.Get(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_Categories(t *testing.T) {
	f := newFixture(t)
	testdb.CreateCategory(t, f.db, "Sports")
	testdb.CreateCategory(t, f.db, "Music")

	cats, err := f.events.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Music", cats[0].Name)
}
