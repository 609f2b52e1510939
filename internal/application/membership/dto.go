package membership

import (
	"time"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/directory"
)

// RegisterInput contains the input for member registration.
// MemberID and LocalGroup arrive as free text from the signup form.
type RegisterInput struct {
	Email      string
	FirstName  string
	LastName   string
	Password   string
	MemberID   string
	Phone      string
	City       string
	State      string
	LocalGroup string
}

// RegisterResult contains the created user and an auto-login token pair
type RegisterResult struct {
	User                  *directory.User
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// UpdateAccountInput is a partial update; nil fields are left untouched
type UpdateAccountInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID

	FirstName          *string
	LastName           *string
	City               *string
	State              *string
	Phone              *string
	Occupation         *string
	IndustryID         *uuid.UUID
	Background         *string
	AvailabilityStatus *string
	ShowContactInfo    *bool
	LocalGroup         *string
	Status             *string
	Role               *string
	ProfilePhoto       []byte
}

// ConnectInput contains the input for creating a connection request
type ConnectInput struct {
	SeekerID               uuid.UUID
	ExpertID               uuid.UUID
	Message                string
	PreferredContactMethod string
}

// CreateLocalGroupInput contains the input for creating a local group
type CreateLocalGroupInput struct {
	GroupName   string
	GroupNumber int
}

// CreateIndustryInput contains the input for creating an industry
type CreateIndustryInput struct {
	Name        string
	Description string
}

// CreateExpertiseInput contains the input for creating an expertise record
type CreateExpertiseInput struct {
	UserID           uuid.UUID
	WhatOffering     string
	WhoWouldBenefit  string
	WhyChooseYou     string
	SkillsNotOffered string
}

// UpdateExpertiseInput is a partial expertise update scoped to its owner
type UpdateExpertiseInput struct {
	ExpertiseID uuid.UUID
	OwnerID     uuid.UUID

	WhatOffering     *string
	WhoWouldBenefit  *string
	WhyChooseYou     *string
	SkillsNotOffered *string
}

// Stats summarizes directory activity for the admin dashboard
type Stats struct {
	TotalUsers         int64
	TotalExperts       int64
	TotalExpertises    int64
	ConnectionRequests int64
}
