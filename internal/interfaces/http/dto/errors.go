package dto

import "net/http"

// Error codes emitted by the application services. The HTTP layer never
// invents codes of its own; it only translates these to status codes.

// Registration and account update
const (
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeDuplicateMemberID  = "DUPLICATE_MEMBER_ID"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeInvalidEmail       = "INVALID_EMAIL"
	ErrCodeInvalidMemberID    = "INVALID_MEMBER_ID"
	ErrCodeInvalidPhoneFormat = "INVALID_PHONE_FORMAT"
	ErrCodeValidationError    = "VALIDATION_ERROR"
	ErrCodeLocalGroupNotFound = "LOCAL_GROUP_NOT_FOUND"
	ErrCodeInvalidInput       = "INVALID_INPUT"
)

// Authentication and password reset
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodePasswordMismatch   = "PASSWORD_MISMATCH"
	ErrCodeInvalidResetToken  = "INVALID_RESET_TOKEN"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenMaxRefresh    = "TOKEN_MAX_REFRESH"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"
	ErrCodeTokenError         = "TOKEN_ERROR"
)

// Resources
const (
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeExpertNotFound       = "EXPERT_NOT_FOUND"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeDuplicateGroupNumber = "DUPLICATE_GROUP_NUMBER"
	ErrCodeAlreadyExists        = "ALREADY_EXISTS"
	ErrCodeInvalidGroupName     = "INVALID_GROUP_NAME"
	ErrCodeInvalidGroupNumber   = "INVALID_GROUP_NUMBER"
	ErrCodeInvalidIndustryName  = "INVALID_INDUSTRY_NAME"
	ErrCodeInvalidExpertise     = "INVALID_EXPERTISE"
	ErrCodeInvalidUserID        = "INVALID_USER_ID"
	ErrCodeInvalidSeekerID      = "INVALID_SEEKER_ID"
	ErrCodeInvalidExpertID      = "INVALID_EXPERT_ID"
)

// General
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodePasswordHashError = "PASSWORD_HASH_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// Validation errors -> 400 Bad Request
	ErrCodeMissingFields:       http.StatusBadRequest,
	ErrCodeWeakPassword:        http.StatusBadRequest,
	ErrCodeInvalidEmail:        http.StatusBadRequest,
	ErrCodeInvalidMemberID:     http.StatusBadRequest,
	ErrCodeInvalidPhoneFormat:  http.StatusBadRequest,
	ErrCodeInvalidGroupName:    http.StatusBadRequest,
	ErrCodeInvalidGroupNumber:  http.StatusBadRequest,
	ErrCodeInvalidIndustryName: http.StatusBadRequest,
	ErrCodeInvalidExpertise:    http.StatusBadRequest,
	ErrCodeInvalidUserID:       http.StatusBadRequest,
	ErrCodeInvalidSeekerID:     http.StatusBadRequest,
	ErrCodeInvalidExpertID:     http.StatusBadRequest,
	ErrCodeInvalidInput:        http.StatusBadRequest,
	ErrCodeValidationError:     http.StatusBadRequest,
	ErrCodePasswordMismatch:    http.StatusBadRequest,
	ErrCodeBadRequest:          http.StatusBadRequest,

	// Auth errors
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeInvalidResetToken:  http.StatusUnauthorized,
	ErrCodeUnauthenticated:    http.StatusUnauthorized,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenMaxRefresh:    http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,
	ErrCodeTokenError:         http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	// Resource errors
	ErrCodeUserNotFound:         http.StatusNotFound,
	ErrCodeExpertNotFound:       http.StatusNotFound,
	ErrCodeLocalGroupNotFound:   http.StatusNotFound,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeDuplicateEmail:       http.StatusConflict,
	ErrCodeDuplicateMemberID:    http.StatusConflict,
	ErrCodeDuplicateGroupNumber: http.StatusConflict,
	ErrCodeAlreadyExists:        http.StatusConflict,

	// General errors
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodePasswordHashError: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
