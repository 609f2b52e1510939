package directory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// Expertise is a service offering published by a member. A member holding at
// least one Expertise row is classified as an expert.
type Expertise struct {
	shared.BaseEntity
	UserID           uuid.UUID
	WhatOffering     string
	WhoWouldBenefit  string
	WhyChooseYou     string
	SkillsNotOffered string
}

// NewExpertise creates an expertise record for a member. The descriptive
// fields beyond the offering are optional and set directly by callers.
func NewExpertise(userID uuid.UUID, whatOffering string) (*Expertise, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if strings.TrimSpace(whatOffering) == "" {
		return nil, shared.NewDomainError("INVALID_EXPERTISE", "Offering description cannot be empty")
	}

	return &Expertise{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		WhatOffering: whatOffering,
	}, nil
}
