// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/domain/entity"
)

// FarmerFilter defines filter options for listing farmers.
type FarmerFilter struct {
	// Search is matched case-insensitively against name, phone, email and
	// address, combined with OR.
	Search string

	// ExperienceBucket restricts results to one experience classification.
	ExperienceBucket *entity.ExperienceBucket
}

// FarmerRepository defines the interface for farmer persistence operations.
type FarmerRepository interface {
	// Create creates a new farmer in the database.
	Create(ctx context.Context, farmer *entity.Farmer) error

	// FindByID retrieves a farmer by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)

	// FindByFilter retrieves farmers matching the filter, ordered by name.
	FindByFilter(ctx context.Context, filter FarmerFilter) ([]*entity.Farmer, error)

	// FindAll retrieves every farmer, ordered by name.
	FindAll(ctx context.Context) ([]*entity.Farmer, error)

	// Update updates an existing farmer in the database.
	Update(ctx context.Context, farmer *entity.Farmer) error

	// Delete removes a farmer and cascades to their crops and notifications.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of farmers.
	Count(ctx context.Context) (int64, error)
}
