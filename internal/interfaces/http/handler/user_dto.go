package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/interfaces/http/dto"
)

// =====================
// User Request DTOs
// =====================

// RegisterRequest represents the request body for member registration.
// Validation beyond presence happens in the service so error codes and
// ordering stay consistent with the rest of the workflow.
type RegisterRequest struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Password   string `json:"password"`
	MemberID   string `json:"member_id"`
	City       string `json:"city"`
	State      string `json:"state"`
	Phone      string `json:"phone"`
	LocalGroup string `json:"local_group"`
}

// UpdateUserRequest is a partial account update. Absent fields are left
// untouched; empty strings clear clearable fields.
type UpdateUserRequest struct {
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	Phone              *string `json:"phone"`
	Occupation         *string `json:"occupation"`
	IndustryID         *string `json:"industry_id"`
	Background         *string `json:"background"`
	AvailabilityStatus *string `json:"availability_status"`
	ShowContactInfo    *bool   `json:"show_contact_info"`
	LocalGroup         *string `json:"local_group"`
	Status             *string `json:"status"`
	Role               *string `json:"role"`
}

// UserListRequest represents query parameters for listing users
type UserListRequest struct {
	dto.ListRequest
	Status string `form:"status"`
}

// =====================
// User Response DTOs
// =====================

// ExpertiseResponse represents an expertise record in responses
type ExpertiseResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	WhatOffering     string    `json:"what_offering"`
	WhoWouldBenefit  string    `json:"who_would_benefit,omitempty"`
	WhyChooseYou     string    `json:"why_choose_you,omitempty"`
	SkillsNotOffered string    `json:"skills_not_offered,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// IndustryResponse represents an industry in responses
type IndustryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// LocalGroupResponse represents a local group in responses
type LocalGroupResponse struct {
	ID          uuid.UUID `json:"id"`
	GroupName   string    `json:"group_name"`
	GroupNumber int       `json:"group_number"`
}

// UserResponse represents a member account in responses. Contact fields are
// omitted on public expert profiles unless the member opted in.
type UserResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Email              string              `json:"email,omitempty"`
	FirstName          string              `json:"first_name"`
	LastName           string              `json:"last_name"`
	MemberID           *int                `json:"member_id,omitempty"`
	City               string              `json:"city,omitempty"`
	State              string              `json:"state,omitempty"`
	Phone              string              `json:"phone,omitempty"`
	Role               string              `json:"role"`
	Status             string              `json:"status"`
	Occupation         string              `json:"occupation,omitempty"`
	Background         string              `json:"background,omitempty"`
	AvailabilityStatus string              `json:"availability_status,omitempty"`
	ShowContactInfo    bool                `json:"show_contact_info"`
	ProfilePhoto       string              `json:"profile_photo,omitempty"`
	Industry           *IndustryResponse   `json:"industry,omitempty"`
	LocalGroup         *LocalGroupResponse `json:"local_group,omitempty"`
	Expertises         []ExpertiseResponse `json:"expertises,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

func toExpertiseResponse(e *directory.Expertise) ExpertiseResponse {
	return ExpertiseResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		WhatOffering:     e.WhatOffering,
		WhoWouldBenefit:  e.WhoWouldBenefit,
		WhyChooseYou:     e.WhyChooseYou,
		SkillsNotOffered: e.SkillsNotOffered,
		CreatedAt:        e.CreatedAt,
	}
}

func toIndustryResponse(i *directory.Industry) *IndustryResponse {
	if i == nil {
		return nil
	}
	return &IndustryResponse{ID: i.ID, Name: i.Name, Description: i.Description}
}

func toLocalGroupResponse(g *directory.LocalGroup) *LocalGroupResponse {
	if g == nil {
		return nil
	}
	return &LocalGroupResponse{ID: g.ID, GroupName: g.GroupName, GroupNumber: g.GroupNumber}
}

// toUserResponse serializes a user. includeContact controls whether email
// and phone appear; public expert profiles pass the member's own
// ShowContactInfo choice, self/admin views pass true.
func toUserResponse(user *directory.User, includeContact bool) UserResponse {
	resp := UserResponse{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		MemberID:           user.MemberID,
		City:               user.City,
		State:              user.State,
		Role:               string(user.Role),
		Status:             string(user.Status),
		Occupation:         user.Occupation,
		Background:         user.Background,
		AvailabilityStatus: user.AvailabilityStatus,
		ShowContactInfo:    user.ShowContactInfo,
		ProfilePhoto:       dto.PhotoDataURI(user.ProfilePhoto),
		Industry:           toIndustryResponse(user.Industry),
		LocalGroup:         toLocalGroupResponse(user.LocalGroup),
		CreatedAt:          user.CreatedAt,
	}

	if includeContact {
		resp.Email = user.Email
		resp.Phone = user.Phone
	}

	for i := range user.Expertises {
		resp.Expertises = append(resp.Expertises, toExpertiseResponse(&user.Expertises[i]))
	}

	return resp
}

func toUserResponses(users []*directory.User, includeContact bool) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u, includeContact))
	}
	return out
}
