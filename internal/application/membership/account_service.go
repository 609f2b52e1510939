package membership

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

// AccountService handles profile updates and the admin approval flow
type AccountService struct {
	userRepo        directory.UserRepository
	industryRepo    directory.IndustryRepository
	adminActionRepo directory.AdminActionRepository
	groupResolver   *GroupResolver
	sender          notification.Sender
	frontendURL     string
	logger          *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo directory.UserRepository,
	industryRepo directory.IndustryRepository,
	adminActionRepo directory.AdminActionRepository,
	groupResolver *GroupResolver,
	sender notification.Sender,
	frontendURL string,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		userRepo:        userRepo,
		industryRepo:    industryRepo,
		adminActionRepo: adminActionRepo,
		groupResolver:   groupResolver,
		sender:          sender,
		frontendURL:     frontendURL,
		logger:          logger,
	}
}

// Update applies a partial update to a user account. Every provided field
// is validated before anything is mutated, and the whole change is written
// in one save. Status and role transitions are recorded as independent
// audit rows after the save; a failed audit insert is logged but does not
// roll the update back.
func (s *AccountService) Update(ctx context.Context, input UpdateAccountInput) (*directory.User, error) {
	target, err := s.userRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	oldStatus := target.Status
	oldRole := target.Role

	var problems []string
	var normalizedPhone *string
	var resolvedGroup *directory.LocalGroup

	if input.Phone != nil && *input.Phone != "" {
		normalized, err := directory.NormalizePhone(*input.Phone)
		if err != nil {
			problems = append(problems, "phone: "+err.Error())
		} else {
			normalizedPhone = &normalized
		}
	}

	if input.IndustryID != nil {
		if _, err := s.industryRepo.FindByID(ctx, *input.IndustryID); err != nil {
			problems = append(problems, "industry: unknown industry")
		}
	}

	if input.LocalGroup != nil && *input.LocalGroup != "" {
		group, err := s.groupResolver.Resolve(ctx, *input.LocalGroup, "account update")
		if err != nil {
			return nil, err
		}
		resolvedGroup = group
	}

	if len(problems) > 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", strings.Join(problems, "; "))
	}

	applyAccountChanges(target, input, normalizedPhone, resolvedGroup)
	target.Touch()

	if err := s.userRepo.Update(ctx, target); err != nil {
		s.logger.Error("Failed to save account update", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update account")
	}

	s.recordAdminActions(ctx, input.ActorID, target, oldStatus, oldRole)

	if oldStatus != directory.UserStatusActive && target.Status == directory.UserStatusActive {
		s.sendApprovalNotification(ctx, target)
	}

	s.logger.Info("Account updated",
		zap.String("target_id", target.ID.String()),
		zap.String("actor_id", input.ActorID.String()))

	return target, nil
}

// applyAccountChanges mutates the target only after all validation passed
func applyAccountChanges(target *directory.User, input UpdateAccountInput, phone *string, group *directory.LocalGroup) {
	if input.FirstName != nil {
		target.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		target.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.City != nil {
		target.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		target.State = strings.TrimSpace(*input.State)
	}
	if phone != nil {
		target.Phone = *phone
	} else if input.Phone != nil && *input.Phone == "" {
		target.Phone = ""
	}
	if input.Occupation != nil {
		target.Occupation = strings.TrimSpace(*input.Occupation)
	}
	if input.IndustryID != nil {
		target.IndustryID = input.IndustryID
	}
	if input.Background != nil {
		target.Background = *input.Background
	}
	if input.AvailabilityStatus != nil {
		target.AvailabilityStatus = *input.AvailabilityStatus
	}
	if input.ShowContactInfo != nil {
		target.ShowContactInfo = *input.ShowContactInfo
	}
	if group != nil {
		target.LocalGroupID = &group.ID
	}
	if input.Status != nil {
		target.Status = directory.UserStatus(*input.Status)
	}
	if input.Role != nil {
		target.Role = directory.UserRole(*input.Role)
	}
	if input.ProfilePhoto != nil {
		target.ProfilePhoto = input.ProfilePhoto
	}
}

// recordAdminActions appends an audit row per changed privileged field
func (s *AccountService) recordAdminActions(
	ctx context.Context,
	actorID uuid.UUID,
	target *directory.User,
	oldStatus directory.UserStatus,
	oldRole directory.UserRole,
) {
	statusChanged := target.Status != oldStatus
	roleChanged := target.Role != oldRole
	if !statusChanged && !roleChanged {
		return
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		s.logger.Error("Failed to load actor for audit record",
			zap.String("actor_id", actorID.String()),
			zap.Error(err))
		return
	}

	if statusChanged {
		action := directory.NewStatusChangeAction(actor, target, oldStatus, target.Status)
		if err := s.adminActionRepo.Create(ctx, action); err != nil {
			s.logger.Error("Failed to record status change audit row", zap.Error(err))
		}
	}

	if roleChanged {
		action := directory.NewRoleChangeAction(actor, target, oldRole, target.Role)
		if err := s.adminActionRepo.Create(ctx, action); err != nil {
			s.logger.Error("Failed to record role change audit row", zap.Error(err))
		}
	}
}

// sendApprovalNotification emails the member that the account is active
func (s *AccountService) sendApprovalNotification(ctx context.Context, user *directory.User) {
	if !s.sender.Send(ctx, notification.Message{
		To:       user.Email,
		Template: notification.TemplateAccountApproved,
		Context: map[string]string{
			"first_name": user.FirstName,
			"login_url":  s.frontendURL + "/login",
		},
	}) {
		s.logger.Warn("Failed to send approval notification",
			zap.String("user_id", user.ID.String()))
	}
}
