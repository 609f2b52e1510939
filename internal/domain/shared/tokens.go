package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResetTokenStore holds short-lived password-reset tokens mapped to user ids.
// Consume must be atomic: under concurrent calls with the same token, at most
// one caller may observe found=true.
type ResetTokenStore interface {
	// Put stores token -> userID with the given TTL.
	Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error

	// Consume returns the user id for the token and deletes it in the same
	// step. found is false when the token is absent or expired.
	Consume(ctx context.Context, token string) (userID uuid.UUID, found bool, err error)
}
