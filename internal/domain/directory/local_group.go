package directory

import (
	"strings"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// LocalGroup is reference data: a chapter members may belong to.
// GroupNumber is the stable public numeric identifier and is unique.
type LocalGroup struct {
	shared.BaseEntity
	GroupName   string
	GroupNumber int
}

// NewLocalGroup creates a local group with a unique 3-digit group number
func NewLocalGroup(groupName string, groupNumber int) (*LocalGroup, error) {
	groupName = strings.TrimSpace(groupName)
	if groupName == "" {
		return nil, shared.NewDomainError("INVALID_GROUP_NAME", "Group name cannot be empty")
	}
	if groupNumber < 100 || groupNumber > 999 {
		return nil, shared.NewDomainError("INVALID_GROUP_NUMBER", "Group number must be a 3-digit number")
	}

	return &LocalGroup{
		BaseEntity:  shared.NewBaseEntity(),
		GroupName:   groupName,
		GroupNumber: groupNumber,
	}, nil
}
