// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for crop category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.CropCategory) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CropCategory, error)

	// FindAll retrieves every category, ordered by name.
	FindAll(ctx context.Context) ([]*entity.CropCategory, error)

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.CropCategory) error

	// Delete removes a category. Referencing crops keep existing but lose
	// their category; the caller clears the references first.
	Delete(ctx context.Context, id uuid.UUID) error
}
