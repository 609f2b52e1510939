package directory

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// UserStatus represents the account status of a member.
// The set is open: administrators may write values outside the documented
// defaults, so callers must never assume exhaustiveness.
type UserStatus string

const (
	UserStatusPending UserStatus = "pending" // Awaiting administrator approval
	UserStatusActive  UserStatus = "active"  // Approved member
)

// UserRole represents the role of a member. Open set, like UserStatus.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// AvailabilityStatusAvailable is the default expert availability.
const AvailabilityStatusAvailable = "available"

// Password cost for bcrypt
const bcryptCost = 12

// User represents a member account. Email is the unique authentication
// identifier. Expert profile fields are folded onto the user; a member is an
// "expert" when at least one Expertise row references it, never via a stored
// flag.
type User struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	MemberID     *int
	City         string
	State        string
	Phone        string // E.164, empty when unset
	Role         UserRole
	Status       UserStatus

	// Expert profile fields
	Occupation         string
	IndustryID         *uuid.UUID
	Background         string
	AvailabilityStatus string
	ShowContactInfo    bool

	LocalGroupID *uuid.UUID
	ProfilePhoto []byte

	// Loaded by the repository, not stored on the users table
	Expertises []Expertise
	Industry   *Industry
	LocalGroup *LocalGroup
}

// NewUser creates a new pending member. The password must already have
// passed the caller's strength policy; only hashing can fail here.
func NewUser(email, firstName, lastName, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:         shared.NewBaseEntity(),
		Email:              email,
		PasswordHash:       hash,
		FirstName:          strings.TrimSpace(firstName),
		LastName:           strings.TrimSpace(lastName),
		Role:               UserRoleMember,
		Status:             UserStatusPending,
		AvailabilityStatus: AvailabilityStatusAvailable,
	}, nil
}

// SetEmail sets the user's email
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return err
	}

	u.Email = email
	u.Touch()
	return nil
}

// SetPhone sets an already-normalized phone number. Use NormalizePhone first.
func (u *User) SetPhone(phone string) {
	u.Phone = phone
	u.Touch()
}

// SetPassword replaces the credential with a hash of the new password.
// Strength checks are the caller's responsibility.
func (u *User) SetPassword(newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = hash
	u.Touch()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// IsActive returns true if the account has been approved
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsExpert returns true if at least one loaded Expertise references the user.
// Repositories answer the same question without loading via HasExpertise.
func (u *User) IsExpert() bool {
	return len(u.Expertises) > 0
}

// DisplayName returns the member's full name, falling back to the email
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// DefaultPasswordPolicy is the platform strength policy: at least 8
// characters with one letter and one digit. Services take the policy as a
// predicate so deployments can swap it out.
func DefaultPasswordPolicy(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	if len(password) > 128 {
		return ErrWeakPassword
	}
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return ErrWeakPassword
	}
	return nil
}

// ErrWeakPassword is returned when a password fails the strength policy
var ErrWeakPassword = shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters and contain a letter and a number")

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
