package repository

import (
	"context"

	"github.com/farellandr/eventure/internal/models"
)

// ParticipantRepository defines data access for participants
type ParticipantRepository interface {
	// List returns participants ordered by name, annotated with their event counts
	List(ctx context.Context, page Page) ([]models.Participant, error)
	// GetByID loads the participant with its events
	GetByID(ctx context.Context, id uint) (*models.Participant, error)
	// Create stores the participant and links it to eventIDs atomically
	Create(ctx context.Context, participant *models.Participant, eventIDs []uint) error
	// Update rewrites the participant and replaces its event links atomically
	Update(ctx context.Context, participant *models.Participant, eventIDs []uint) error
	// Delete removes the participant and its event links, never the events
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// EmailTaken reports whether another participant already uses email
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}
