package directory

import (
	"context"

	"github.com/google/uuid"
)

// AdminActionRepository defines the interface for audit trail persistence.
// The trail is append-only; there is no update or delete.
type AdminActionRepository interface {
	// Create appends an audit record
	Create(ctx context.Context, action *AdminAction) error

	// FindAll returns audit records, newest first
	FindAll(ctx context.Context, page, pageSize int) ([]*AdminAction, int64, error)

	// FindByTargetUserID returns audit records affecting the given user
	FindByTargetUserID(ctx context.Context, targetUserID uuid.UUID) ([]*AdminAction, error)
}
