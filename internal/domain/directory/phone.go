package directory

import (
	"regexp"
	"strings"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// ErrInvalidPhoneFormat is returned when a phone number cannot be
// normalized to an unambiguous 10-digit US number.
var ErrInvalidPhoneFormat = shared.NewDomainError("INVALID_PHONE_FORMAT", "Phone number must be a valid 10-digit US number")

var (
	internationalRegex = regexp.MustCompile(`^\+\d{10,15}$`)
	nonDigitRegex      = regexp.MustCompile(`\D`)
)

// NormalizePhone normalizes a raw phone number to E.164.
//
// Input already carrying a + prefix is accepted as-is when it is + followed
// by 10 to 15 digits. Anything else is reduced to its digits; an 11-digit
// number with a leading 1 has the country code dropped, and the result must
// be exactly 10 digits, returned with a +1 prefix.
//
// This is the single normalization routine; callers that treat phone as an
// optional field catch the error and omit the field instead of aborting.
func NormalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "+") {
		if internationalRegex.MatchString(trimmed) {
			return trimmed, nil
		}
		return "", ErrInvalidPhoneFormat
	}

	digits := nonDigitRegex.ReplaceAllString(trimmed, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", ErrInvalidPhoneFormat
	}

	return "+1" + digits, nil
}
