package directory

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for member persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByMemberID checks if a membership number is already claimed
	ExistsByMemberID(ctx context.Context, memberID int) (bool, error)

	// FindAll returns users matching the filter with pagination
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	// FindExperts returns users holding at least one Expertise record,
	// with expertise, industry, and local group associations loaded.
	// Expert membership is an existence check over the expertises table,
	// never a stored flag.
	FindExperts(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	// HasExpertise reports whether the user has at least one Expertise row
	HasExpertise(ctx context.Context, userID uuid.UUID) (bool, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// CountExperts returns the number of users with at least one Expertise
	CountExperts(ctx context.Context) (int64, error)
}

// UserFilter contains filter options for querying users
type UserFilter struct {
	// Search keyword for name or email
	Keyword string

	// Filter by status
	Status *UserStatus

	// Sorting; the persistence layer validates the column name
	SortBy    string
	SortOrder string

	// Pagination
	Page     int
	PageSize int
}

// NewUserFilter creates a new UserFilter with default values
func NewUserFilter() UserFilter {
	return UserFilter{
		Page:     1,
		PageSize: 20,
	}
}

// Offset returns the offset for pagination
func (f UserFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f UserFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
