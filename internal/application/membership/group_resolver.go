package membership

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
)

// GroupResolver resolves free-text local group input to a stored group.
// All-digit input resolves by group number, anything else by exact name.
// Exactly one strategy runs per call; there is no fallback between them.
type GroupResolver struct {
	localGroupRepo directory.LocalGroupRepository
}

// NewGroupResolver creates a new group resolver
func NewGroupResolver(localGroupRepo directory.LocalGroupRepository) *GroupResolver {
	return &GroupResolver{localGroupRepo: localGroupRepo}
}

// Resolve looks up a local group from user input. The operation string
// names the calling workflow for the error message.
func (r *GroupResolver) Resolve(ctx context.Context, input, operation string) (*directory.LocalGroup, error) {
	input = strings.TrimSpace(input)

	if isAllDigits(input) {
		number, _ := strconv.Atoi(input)
		group, err := r.localGroupRepo.FindByNumber(ctx, number)
		if err != nil {
			return nil, groupNotFoundError(input, operation)
		}
		return group, nil
	}

	group, err := r.localGroupRepo.FindByName(ctx, input)
	if err != nil {
		return nil, groupNotFoundError(input, operation)
	}
	return group, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func groupNotFoundError(input, operation string) error {
	return shared.NewDomainError("LOCAL_GROUP_NOT_FOUND",
		fmt.Sprintf("Local group '%s' not found during %s", input, operation))
}
