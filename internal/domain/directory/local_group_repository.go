package directory

import (
	"context"

	"github.com/google/uuid"
)

// LocalGroupRepository defines the interface for local group persistence
type LocalGroupRepository interface {
	// Create creates a new local group
	Create(ctx context.Context, group *LocalGroup) error

	// FindByID finds a group by ID
	FindByID(ctx context.Context, id uuid.UUID) (*LocalGroup, error)

	// FindByNumber finds a group by its unique 3-digit group number
	FindByNumber(ctx context.Context, groupNumber int) (*LocalGroup, error)

	// FindByName finds a group by exact group name
	FindByName(ctx context.Context, groupName string) (*LocalGroup, error)

	// FindAll returns all local groups ordered by group number
	FindAll(ctx context.Context) ([]*LocalGroup, error)
}
