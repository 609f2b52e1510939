package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/memberconnect/backend/internal/domain/directory"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  *directory.User
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID          uuid.UUID
	AccessTokenJTI  string
	AccessTokenTTL  time.Duration
	RefreshTokenJTI string
	RefreshTokenTTL time.Duration
}

// RequestPasswordResetInput starts the password reset flow
type RequestPasswordResetInput struct {
	Email string
}

// ConfirmPasswordResetInput completes the password reset flow
type ConfirmPasswordResetInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}
