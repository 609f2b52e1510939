package membership

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
)

// DirectoryService exposes the member directory, the expert listing and
// the reference data (local groups, industries, expertise records).
type DirectoryService struct {
	userRepo        directory.UserRepository
	localGroupRepo  directory.LocalGroupRepository
	industryRepo    directory.IndustryRepository
	expertiseRepo   directory.ExpertiseRepository
	requestRepo     directory.ConnectionRequestRepository
	adminActionRepo directory.AdminActionRepository
	logger          *zap.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	userRepo directory.UserRepository,
	localGroupRepo directory.LocalGroupRepository,
	industryRepo directory.IndustryRepository,
	expertiseRepo directory.ExpertiseRepository,
	requestRepo directory.ConnectionRequestRepository,
	adminActionRepo directory.AdminActionRepository,
	logger *zap.Logger,
) *DirectoryService {
	return &DirectoryService{
		userRepo:        userRepo,
		localGroupRepo:  localGroupRepo,
		industryRepo:    industryRepo,
		expertiseRepo:   expertiseRepo,
		requestRepo:     requestRepo,
		adminActionRepo: adminActionRepo,
		logger:          logger,
	}
}

// ListUsers returns users matching the filter. Admin only at the HTTP layer.
func (s *DirectoryService) ListUsers(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	return s.userRepo.FindAll(ctx, filter)
}

// GetUser returns a user with associations loaded
func (s *DirectoryService) GetUser(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}
	return user, nil
}

// ListExperts returns active members that offer at least one expertise
func (s *DirectoryService) ListExperts(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	return s.userRepo.FindExperts(ctx, filter)
}

// GetExpert returns an expert profile; a user without expertise records is
// not reachable through this path
func (s *DirectoryService) GetExpert(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("EXPERT_NOT_FOUND", "Expert not found")
	}
	if !user.IsExpert() || !user.IsActive() {
		return nil, shared.NewDomainError("EXPERT_NOT_FOUND", "Expert not found")
	}
	return user, nil
}

// ListLocalGroups returns all local groups
func (s *DirectoryService) ListLocalGroups(ctx context.Context) ([]*directory.LocalGroup, error) {
	return s.localGroupRepo.FindAll(ctx)
}

// CreateLocalGroup creates a local group; group numbers are unique
func (s *DirectoryService) CreateLocalGroup(ctx context.Context, input CreateLocalGroupInput) (*directory.LocalGroup, error) {
	if existing, err := s.localGroupRepo.FindByNumber(ctx, input.GroupNumber); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_GROUP_NUMBER", "A local group with this number already exists")
	}

	group, err := directory.NewLocalGroup(input.GroupName, input.GroupNumber)
	if err != nil {
		return nil, err
	}

	if err := s.localGroupRepo.Create(ctx, group); err != nil {
		s.logger.Error("Failed to create local group", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create local group")
	}
	return group, nil
}

// ListIndustries returns all industries
func (s *DirectoryService) ListIndustries(ctx context.Context) ([]*directory.Industry, error) {
	return s.industryRepo.FindAll(ctx)
}

// CreateIndustry creates an industry
func (s *DirectoryService) CreateIndustry(ctx context.Context, input CreateIndustryInput) (*directory.Industry, error) {
	industry, err := directory.NewIndustry(input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.industryRepo.Create(ctx, industry); err != nil {
		s.logger.Error("Failed to create industry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create industry")
	}
	return industry, nil
}

// ListExpertises returns the expertise records owned by a user
func (s *DirectoryService) ListExpertises(ctx context.Context, userID uuid.UUID) ([]*directory.Expertise, error) {
	return s.expertiseRepo.FindByUserID(ctx, userID)
}

// CreateExpertise creates an expertise record for its owner
func (s *DirectoryService) CreateExpertise(ctx context.Context, input CreateExpertiseInput) (*directory.Expertise, error) {
	expertise, err := directory.NewExpertise(input.UserID, input.WhatOffering)
	if err != nil {
		return nil, err
	}
	expertise.WhoWouldBenefit = input.WhoWouldBenefit
	expertise.WhyChooseYou = input.WhyChooseYou
	expertise.SkillsNotOffered = input.SkillsNotOffered

	if err := s.expertiseRepo.Create(ctx, expertise); err != nil {
		s.logger.Error("Failed to create expertise", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create expertise")
	}
	return expertise, nil
}

// UpdateExpertise applies a partial update to an expertise record owned by
// the caller
func (s *DirectoryService) UpdateExpertise(ctx context.Context, input UpdateExpertiseInput) (*directory.Expertise, error) {
	expertise, err := s.expertiseRepo.FindByID(ctx, input.ExpertiseID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Expertise not found")
	}
	if expertise.UserID != input.OwnerID {
		return nil, shared.ErrForbidden
	}

	if input.WhatOffering != nil {
		expertise.WhatOffering = *input.WhatOffering
	}
	if input.WhoWouldBenefit != nil {
		expertise.WhoWouldBenefit = *input.WhoWouldBenefit
	}
	if input.WhyChooseYou != nil {
		expertise.WhyChooseYou = *input.WhyChooseYou
	}
	if input.SkillsNotOffered != nil {
		expertise.SkillsNotOffered = *input.SkillsNotOffered
	}
	expertise.Touch()

	if err := s.expertiseRepo.Update(ctx, expertise); err != nil {
		s.logger.Error("Failed to update expertise", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update expertise")
	}
	return expertise, nil
}

// DeleteExpertise removes an expertise record owned by the caller
func (s *DirectoryService) DeleteExpertise(ctx context.Context, expertiseID, ownerID uuid.UUID) error {
	expertise, err := s.expertiseRepo.FindByID(ctx, expertiseID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Expertise not found")
	}
	if expertise.UserID != ownerID {
		return shared.ErrForbidden
	}
	return s.expertiseRepo.Delete(ctx, expertiseID)
}

// ListAdminActions returns the audit trail, newest first. Admin only.
func (s *DirectoryService) ListAdminActions(ctx context.Context, page, pageSize int) ([]*directory.AdminAction, int64, error) {
	return s.adminActionRepo.FindAll(ctx, page, pageSize)
}

// GetStats returns directory counters for the admin dashboard
func (s *DirectoryService) GetStats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalExperts, err := s.userRepo.CountExperts(ctx)
	if err != nil {
		return nil, err
	}
	totalExpertises, err := s.expertiseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRequests, err := s.requestRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:         totalUsers,
		TotalExperts:       totalExperts,
		TotalExpertises:    totalExpertises,
		ConnectionRequests: totalRequests,
	}, nil
}
