package repository

import (
	"context"
	"time"

	"github.com/farellandr/eventure/internal/models"
)

// EventStats are the dashboard counters computed in one aggregate query.
// Upcoming counts dates on or after the reference day, Past strictly before,
// so Total == Upcoming + Past.
type EventStats struct {
	Total    int64
	Upcoming int64
	Past     int64
}

// EventRepository defines data access for events
type EventRepository interface {
	// List returns events matching filter, annotated with participant counts,
	// in default order
	List(ctx context.Context, filter EventFilter, page Page) ([]models.Event, error)
	// Count returns the number of events matching filter
	Count(ctx context.Context, filter EventFilter) (int64, error)
	// GetByID loads the event with its category and participants
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	// Delete removes the event and its participant links, never the participants
	Delete(ctx context.Context, id uint) error
	// ExistingIDs returns the subset of ids that refer to stored events
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	Stats(ctx context.Context, today time.Time) (EventStats, error)
}
