package directory

import (
	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// ContactMethod is how a seeker prefers to be reached. Open set.
type ContactMethod string

const (
	ContactMethodEmail     ContactMethod = "email"
	ContactMethodPhone     ContactMethod = "phone"
	ContactMethodVideoCall ContactMethod = "video_call"
	ContactMethodInPerson  ContactMethod = "in_person"
	ContactMethodOther     ContactMethod = "other"
)

var contactMethodLabels = map[ContactMethod]string{
	ContactMethodEmail:     "Email",
	ContactMethodPhone:     "Phone call",
	ContactMethodVideoCall: "Video call (Zoom, etc.)",
	ContactMethodInPerson:  "In-person meeting",
	ContactMethodOther:     "Other (specify in message)",
}

// Label returns the human-readable form used in notifications. Unknown
// methods fall back to the raw value.
func (m ContactMethod) Label() string {
	if label, ok := contactMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// ConnectionRequest links a seeker to an expert. Append-only: requests are
// never updated or deleted once created.
type ConnectionRequest struct {
	shared.BaseEntity
	SeekerID               uuid.UUID
	ExpertID               uuid.UUID
	Message                string
	PreferredContactMethod ContactMethod

	// Loaded by the repository for serialization
	Seeker *User
	Expert *User
}

// NewConnectionRequest creates a connection request from a seeker to an expert
func NewConnectionRequest(seekerID, expertID uuid.UUID, message string, method ContactMethod) (*ConnectionRequest, error) {
	if seekerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SEEKER_ID", "Seeker ID cannot be empty")
	}
	if expertID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EXPERT_ID", "Expert ID cannot be empty")
	}
	if method == "" {
		method = ContactMethodEmail
	}

	return &ConnectionRequest{
		BaseEntity:             shared.NewBaseEntity(),
		SeekerID:               seekerID,
		ExpertID:               expertID,
		Message:                message,
		PreferredContactMethod: method,
	}, nil
}
