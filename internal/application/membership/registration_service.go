package membership

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/auth"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

// RegistrationService handles member signup
type RegistrationService struct {
	userRepo       directory.UserRepository
	groupResolver  *GroupResolver
	jwtService     *auth.JWTService
	sender         notification.Sender
	passwordPolicy func(string) error
	adminAddress   string
	logger         *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	userRepo directory.UserRepository,
	groupResolver *GroupResolver,
	jwtService *auth.JWTService,
	sender notification.Sender,
	adminAddress string,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		userRepo:       userRepo,
		groupResolver:  groupResolver,
		jwtService:     jwtService,
		sender:         sender,
		passwordPolicy: directory.DefaultPasswordPolicy,
		adminAddress:   adminAddress,
		logger:         logger,
	}
}

// Register validates and creates a new pending member, then issues a token
// pair so the new member is signed in immediately. A malformed phone is
// dropped without error; an unresolvable local group aborts the whole
// registration.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	missing := missingRegistrationFields(input)
	if len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_FIELDS",
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process registration")
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "An account with this email already exists")
	}

	if err := s.passwordPolicy(input.Password); err != nil {
		return nil, err
	}

	var memberID *int
	if input.MemberID != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(input.MemberID))
		if err != nil {
			return nil, shared.NewDomainError("INVALID_MEMBER_ID", "Member ID must be a number")
		}
		taken, err := s.userRepo.ExistsByMemberID(ctx, parsed)
		if err != nil {
			s.logger.Error("Failed to check member ID uniqueness", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to process registration")
		}
		if taken {
			return nil, shared.NewDomainError("DUPLICATE_MEMBER_ID", "An account with this member ID already exists")
		}
		memberID = &parsed
	}

	user, err := directory.NewUser(input.Email, input.FirstName, input.LastName, input.Password)
	if err != nil {
		return nil, err
	}
	user.MemberID = memberID
	user.City = strings.TrimSpace(input.City)
	user.State = strings.TrimSpace(input.State)

	// A phone that fails normalization is dropped, not rejected
	if input.Phone != "" {
		if normalized, err := directory.NormalizePhone(input.Phone); err == nil {
			user.Phone = normalized
		} else {
			s.logger.Info("Dropping unparseable phone from registration",
				zap.String("email", user.Email))
		}
	}

	// An unresolvable group is a hard failure
	if input.LocalGroup != "" {
		group, err := s.groupResolver.Resolve(ctx, input.LocalGroup, "registration")
		if err != nil {
			return nil, err
		}
		user.LocalGroupID = &group.ID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.notifyRegistration(ctx, user)

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair after registration", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Account created but sign-in failed")
	}

	s.logger.Info("Member registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &RegisterResult{
		User:                  user,
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// notifyRegistration sends the welcome email and the admin alert. Both are
// best-effort and independent of each other.
func (s *RegistrationService) notifyRegistration(ctx context.Context, user *directory.User) {
	if !s.sender.Send(ctx, notification.Message{
		To:       user.Email,
		Template: notification.TemplateRegistrationReceived,
		Context:  map[string]string{"first_name": user.FirstName},
	}) {
		s.logger.Warn("Failed to send registration confirmation",
			zap.String("user_id", user.ID.String()))
	}

	if s.adminAddress == "" {
		return
	}
	if !s.sender.Send(ctx, notification.Message{
		To:       s.adminAddress,
		Template: notification.TemplateAdminNewRegistration,
		Context: map[string]string{
			"name":  user.DisplayName(),
			"email": user.Email,
		},
	}) {
		s.logger.Warn("Failed to send admin registration alert",
			zap.String("user_id", user.ID.String()))
	}
}

func missingRegistrationFields(input RegisterInput) []string {
	var missing []string
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(input.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
