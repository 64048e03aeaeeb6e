package repository

import (
	"context"

	"github.com/farellandr/eventure/internal/models"
)

// CategoryRepository defines data access for categories
type CategoryRepository interface {
	// List returns every category ordered by name
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	// Delete removes the category together with all of its events
	Delete(ctx context.Context, id uint) error
	// NameTaken reports whether another category already uses name
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
