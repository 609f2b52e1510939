package directory

import (
	"context"

	"github.com/google/uuid"
)

// ExpertiseRepository defines the interface for expertise persistence
type ExpertiseRepository interface {
	// Create creates a new expertise record
	Create(ctx context.Context, expertise *Expertise) error

	// Update updates an existing expertise record
	Update(ctx context.Context, expertise *Expertise) error

	// Delete deletes an expertise record by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an expertise record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Expertise, error)

	// FindByUserID returns all expertise records for a user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Expertise, error)

	// Count returns the total number of expertise records
	Count(ctx context.Context) (int64, error)
}
