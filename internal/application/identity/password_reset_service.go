package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/auth"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

const (
	resetTokenBytes = 32

	// sessionRevokeTTL must cover the longest-lived refresh token
	sessionRevokeTTL = 7 * 24 * time.Hour
)

// PasswordResetService implements the forgot-password flow. Request never
// reveals whether an email is registered; Confirm consumes the token so it
// can only be used once.
type PasswordResetService struct {
	userRepo       directory.UserRepository
	tokenStore     shared.ResetTokenStore
	sender         notification.Sender
	tokenBlacklist auth.TokenBlacklist
	passwordPolicy func(string) error
	frontendURL    string
	tokenTTL       time.Duration
	logger         *zap.Logger
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo directory.UserRepository,
	tokenStore shared.ResetTokenStore,
	sender notification.Sender,
	tokenBlacklist auth.TokenBlacklist,
	frontendURL string,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *PasswordResetService {
	return &PasswordResetService{
		userRepo:       userRepo,
		tokenStore:     tokenStore,
		sender:         sender,
		tokenBlacklist: tokenBlacklist,
		passwordPolicy: directory.DefaultPasswordPolicy,
		frontendURL:    frontendURL,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// Request starts the reset flow for an email address. The outcome is the
// same whether or not the address belongs to an account, so the endpoint
// cannot be used to probe for registered emails.
func (s *PasswordResetService) Request(ctx context.Context, input RequestPasswordResetInput) error {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Info("Password reset requested for unknown email")
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		s.logger.Error("Failed to generate reset token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reset request")
	}

	if err := s.tokenStore.Put(ctx, token, user.ID, s.tokenTTL); err != nil {
		s.logger.Error("Failed to store reset token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reset request")
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	sent := s.sender.Send(ctx, notification.Message{
		To:       user.Email,
		Template: notification.TemplatePasswordReset,
		Context: map[string]string{
			"first_name": user.FirstName,
			"reset_url":  resetURL,
			"ttl":        formatTTL(s.tokenTTL),
		},
	})
	if !sent {
		s.logger.Warn("Password reset email could not be delivered",
			zap.String("user_id", user.ID.String()))
	}

	s.logger.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

// Confirm completes the reset flow with a token from the reset email
func (s *PasswordResetService) Confirm(ctx context.Context, input ConfirmPasswordResetInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return shared.NewDomainError("PASSWORD_MISMATCH", "Passwords do not match")
	}

	userID, found, err := s.tokenStore.Consume(ctx, input.Token)
	if err != nil {
		s.logger.Error("Failed to consume reset token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to process reset request")
	}
	if !found {
		return shared.NewDomainError("INVALID_RESET_TOKEN", "Reset token is invalid or has expired")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := s.passwordPolicy(input.NewPassword); err != nil {
		return err
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		s.logger.Error("Failed to hash new password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to persist new password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	// Revoke every session issued before the reset
	if s.tokenBlacklist != nil {
		if err := s.tokenBlacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), sessionRevokeTTL); err != nil {
			s.logger.Error("Failed to invalidate existing sessions", zap.Error(err))
		}
	}

	s.logger.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}

// generateResetToken returns a 64-character hex token from a CSPRNG
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func formatTTL(ttl time.Duration) string {
	if ttl >= time.Hour && ttl%time.Hour == 0 {
		hours := int(ttl / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(ttl/time.Minute))
}
