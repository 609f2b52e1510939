package directory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// AdminAction is an append-only audit record of a privileged field change.
// Rows are never updated or deleted.
type AdminAction struct {
	shared.BaseEntity
	AdminID      uuid.UUID
	TargetUserID uuid.UUID
	Action       string

	// Loaded by the repository for serialization
	Admin      *User
	TargetUser *User
}

// NewAdminAction creates an audit record with a free-text description
func NewAdminAction(adminID, targetUserID uuid.UUID, action string) *AdminAction {
	return &AdminAction{
		BaseEntity:   shared.NewBaseEntity(),
		AdminID:      adminID,
		TargetUserID: targetUserID,
		Action:       action,
	}
}

// NewStatusChangeAction records a status transition applied by actor to target
func NewStatusChangeAction(actor, target *User, oldStatus, newStatus UserStatus) *AdminAction {
	action := fmt.Sprintf("%s changed status of %s from '%s' to '%s'",
		actor.DisplayName(), target.DisplayName(), oldStatus, newStatus)
	return NewAdminAction(actor.ID, target.ID, action)
}

// NewRoleChangeAction records a role change applied by actor to target
func NewRoleChangeAction(actor, target *User, oldRole, newRole UserRole) *AdminAction {
	action := fmt.Sprintf("%s changed role of %s from '%s' to '%s'",
		actor.DisplayName(), target.DisplayName(), oldRole, newRole)
	return NewAdminAction(actor.ID, target.ID, action)
}
