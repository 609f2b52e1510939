package models

import (
	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/directory"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Email              string                      `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash       string                      `gorm:"type:varchar(255);not null"`
	FirstName          string                      `gorm:"type:varchar(100);not null"`
	LastName           string                      `gorm:"type:varchar(100);not null"`
	MemberID           *int                        `gorm:"column:member_id;uniqueIndex"`
	City               string                      `gorm:"type:varchar(100)"`
	State              string                      `gorm:"type:varchar(100)"`
	Phone              string                      `gorm:"type:varchar(20)"`
	Role               directory.UserRole          `gorm:"type:varchar(20);not null;default:'member'"`
	Status             directory.UserStatus        `gorm:"type:varchar(20);not null;default:'pending';index"`
	Occupation         string                      `gorm:"type:varchar(200)"`
	IndustryID         *uuid.UUID                  `gorm:"type:uuid;index"`
	Background         string                      `gorm:"type:text"`
	AvailabilityStatus string                      `gorm:"type:varchar(30);not null;default:'available'"`
	ShowContactInfo    bool                        `gorm:"not null;default:false"`
	LocalGroupID       *uuid.UUID                  `gorm:"type:uuid;index"`
	ProfilePhoto       []byte                      `gorm:"type:bytea"`
	Expertises         []ExpertiseModel            `gorm:"foreignKey:UserID"`
	Industry           *IndustryModel              `gorm:"foreignKey:IndustryID"`
	LocalGroup         *LocalGroupModel            `gorm:"foreignKey:LocalGroupID"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *directory.User {
	user := &directory.User{
		BaseEntity:         m.BaseModel.ToDomain(),
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		MemberID:           m.MemberID,
		City:               m.City,
		State:              m.State,
		Phone:              m.Phone,
		Role:               m.Role,
		Status:             m.Status,
		Occupation:         m.Occupation,
		IndustryID:         m.IndustryID,
		Background:         m.Background,
		AvailabilityStatus: m.AvailabilityStatus,
		ShowContactInfo:    m.ShowContactInfo,
		LocalGroupID:       m.LocalGroupID,
		ProfilePhoto:       m.ProfilePhoto,
	}

	if len(m.Expertises) > 0 {
		user.Expertises = make([]directory.Expertise, 0, len(m.Expertises))
		for i := range m.Expertises {
			user.Expertises = append(user.Expertises, *m.Expertises[i].ToDomain())
		}
	}
	if m.Industry != nil {
		user.Industry = m.Industry.ToDomain()
	}
	if m.LocalGroup != nil {
		user.LocalGroup = m.LocalGroup.ToDomain()
	}

	return user
}

// FromDomain populates the persistence model from a domain User entity.
// Associations are not written back; they are managed through their own
// repositories.
func (m *UserModel) FromDomain(u *directory.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.MemberID = u.MemberID
	m.City = u.City
	m.State = u.State
	m.Phone = u.Phone
	m.Role = u.Role
	m.Status = u.Status
	m.Occupation = u.Occupation
	m.IndustryID = u.IndustryID
	m.Background = u.Background
	m.AvailabilityStatus = u.AvailabilityStatus
	m.ShowContactInfo = u.ShowContactInfo
	m.LocalGroupID = u.LocalGroupID
	m.ProfilePhoto = u.ProfilePhoto
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *directory.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// LocalGroupModel is the persistence model for the LocalGroup domain entity.
type LocalGroupModel struct {
	BaseModel
	GroupName   string `gorm:"type:varchar(200);not null"`
	GroupNumber int    `gorm:"not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (LocalGroupModel) TableName() string {
	return "local_groups"
}

// ToDomain converts the persistence model to a domain LocalGroup entity.
func (m *LocalGroupModel) ToDomain() *directory.LocalGroup {
	return &directory.LocalGroup{
		BaseEntity:  m.BaseModel.ToDomain(),
		GroupName:   m.GroupName,
		GroupNumber: m.GroupNumber,
	}
}

// FromDomain populates the persistence model from a domain LocalGroup entity.
func (m *LocalGroupModel) FromDomain(g *directory.LocalGroup) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.GroupName = g.GroupName
	m.GroupNumber = g.GroupNumber
}

// LocalGroupModelFromDomain creates a new persistence model from a domain LocalGroup entity.
func LocalGroupModelFromDomain(g *directory.LocalGroup) *LocalGroupModel {
	m := &LocalGroupModel{}
	m.FromDomain(g)
	return m
}

// IndustryModel is the persistence model for the Industry domain entity.
type IndustryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IndustryModel) TableName() string {
	return "industries"
}

// ToDomain converts the persistence model to a domain Industry entity.
func (m *IndustryModel) ToDomain() *directory.Industry {
	return &directory.Industry{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Industry entity.
func (m *IndustryModel) FromDomain(i *directory.Industry) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Name = i.Name
	m.Description = i.Description
}

// IndustryModelFromDomain creates a new persistence model from a domain Industry entity.
func IndustryModelFromDomain(i *directory.Industry) *IndustryModel {
	m := &IndustryModel{}
	m.FromDomain(i)
	return m
}

// ExpertiseModel is the persistence model for the Expertise domain entity.
type ExpertiseModel struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	WhatOffering     string    `gorm:"type:text;not null"`
	WhoWouldBenefit  string    `gorm:"type:text"`
	WhyChooseYou     string    `gorm:"type:text"`
	SkillsNotOffered string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpertiseModel) TableName() string {
	return "expertises"
}

// ToDomain converts the persistence model to a domain Expertise entity.
func (m *ExpertiseModel) ToDomain() *directory.Expertise {
	return &directory.Expertise{
		BaseEntity:       m.BaseModel.ToDomain(),
		UserID:           m.UserID,
		WhatOffering:     m.WhatOffering,
		WhoWouldBenefit:  m.WhoWouldBenefit,
		WhyChooseYou:     m.WhyChooseYou,
		SkillsNotOffered: m.SkillsNotOffered,
	}
}

// FromDomain populates the persistence model from a domain Expertise entity.
func (m *ExpertiseModel) FromDomain(e *directory.Expertise) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.UserID = e.UserID
	m.WhatOffering = e.WhatOffering
	m.WhoWouldBenefit = e.WhoWouldBenefit
	m.WhyChooseYou = e.WhyChooseYou
	m.SkillsNotOffered = e.SkillsNotOffered
}

// ExpertiseModelFromDomain creates a new persistence model from a domain Expertise entity.
func ExpertiseModelFromDomain(e *directory.Expertise) *ExpertiseModel {
	m := &ExpertiseModel{}
	m.FromDomain(e)
	return m
}

// ConnectionRequestModel is the persistence model for the ConnectionRequest domain entity.
type ConnectionRequestModel struct {
	BaseModel
	SeekerID               uuid.UUID               `gorm:"type:uuid;not null;index"`
	ExpertID               uuid.UUID               `gorm:"type:uuid;not null;index"`
	Message                string                  `gorm:"type:text;not null"`
	PreferredContactMethod directory.ContactMethod `gorm:"type:varchar(30);not null;default:'email'"`
	Seeker                 *UserModel              `gorm:"foreignKey:SeekerID"`
	Expert                 *UserModel              `gorm:"foreignKey:ExpertID"`
}

// TableName returns the table name for GORM
func (ConnectionRequestModel) TableName() string {
	return "connection_requests"
}

// ToDomain converts the persistence model to a domain ConnectionRequest entity.
func (m *ConnectionRequestModel) ToDomain() *directory.ConnectionRequest {
	cr := &directory.ConnectionRequest{
		BaseEntity:             m.BaseModel.ToDomain(),
		SeekerID:               m.SeekerID,
		ExpertID:               m.ExpertID,
		Message:                m.Message,
		PreferredContactMethod: m.PreferredContactMethod,
	}
	if m.Seeker != nil {
		cr.Seeker = m.Seeker.ToDomain()
	}
	if m.Expert != nil {
		cr.Expert = m.Expert.ToDomain()
	}
	return cr
}

// FromDomain populates the persistence model from a domain ConnectionRequest entity.
func (m *ConnectionRequestModel) FromDomain(cr *directory.ConnectionRequest) {
	m.FromDomainBaseEntity(cr.BaseEntity)
	m.SeekerID = cr.SeekerID
	m.ExpertID = cr.ExpertID
	m.Message = cr.Message
	m.PreferredContactMethod = cr.PreferredContactMethod
}

// ConnectionRequestModelFromDomain creates a new persistence model from a domain ConnectionRequest entity.
func ConnectionRequestModelFromDomain(cr *directory.ConnectionRequest) *ConnectionRequestModel {
	m := &ConnectionRequestModel{}
	m.FromDomain(cr)
	return m
}

// AdminActionModel is the persistence model for the AdminAction domain entity.
type AdminActionModel struct {
	BaseModel
	AdminID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	TargetUserID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action       string     `gorm:"type:text;not null"`
	Admin        *UserModel `gorm:"foreignKey:AdminID"`
	TargetUser   *UserModel `gorm:"foreignKey:TargetUserID"`
}

// TableName returns the table name for GORM
func (AdminActionModel) TableName() string {
	return "admin_actions"
}

// ToDomain converts the persistence model to a domain AdminAction entity.
func (m *AdminActionModel) ToDomain() *directory.AdminAction {
	a := &directory.AdminAction{
		BaseEntity:   m.BaseModel.ToDomain(),
		AdminID:      m.AdminID,
		TargetUserID: m.TargetUserID,
		Action:       m.Action,
	}
	if m.Admin != nil {
		a.Admin = m.Admin.ToDomain()
	}
	if m.TargetUser != nil {
		a.TargetUser = m.TargetUser.ToDomain()
	}
	return a
}

// FromDomain populates the persistence model from a domain AdminAction entity.
func (m *AdminActionModel) FromDomain(a *directory.AdminAction) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.AdminID = a.AdminID
	m.TargetUserID = a.TargetUserID
	m.Action = a.Action
}

// AdminActionModelFromDomain creates a new persistence model from a domain AdminAction entity.
func AdminActionModelFromDomain(a *directory.AdminAction) *AdminActionModel {
	m := &AdminActionModel{}
	m.FromDomain(a)
	return m
}
