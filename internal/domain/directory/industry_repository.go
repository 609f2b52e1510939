package directory

import (
	"context"

	"github.com/google/uuid"
)

// IndustryRepository defines the interface for industry persistence
type IndustryRepository interface {
	// Create creates a new industry
	Create(ctx context.Context, industry *Industry) error

	// FindByID finds an industry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Industry, error)

	// FindAll returns all industries ordered by name
	FindAll(ctx context.Context) ([]*Industry, error)
}
