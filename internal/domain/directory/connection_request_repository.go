package directory

import (
	"context"

	"github.com/google/uuid"
)

// ConnectionRequestRepository defines the interface for connection request
// persistence. Requests are append-only; there is no update or delete.
type ConnectionRequestRepository interface {
	// Create creates a new connection request
	Create(ctx context.Context, request *ConnectionRequest) error

	// FindByID finds a connection request by ID with seeker and expert loaded
	FindByID(ctx context.Context, id uuid.UUID) (*ConnectionRequest, error)

	// FindAll returns all connection requests, newest first
	FindAll(ctx context.Context, page, pageSize int) ([]*ConnectionRequest, int64, error)

	// FindBySeekerID returns requests initiated by the given user, newest first
	FindBySeekerID(ctx context.Context, seekerID uuid.UUID, page, pageSize int) ([]*ConnectionRequest, int64, error)

	// Count returns the total number of connection requests
	Count(ctx context.Context) (int64, error)
}
