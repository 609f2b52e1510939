package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("accepts common 10-digit US formats", func(t *testing.T) {
		inputs := []string{
			"(415) 555-2671",
			"415-555-2671",
			"4155552671",
			"14155552671",
			" 415.555.2671 ",
		}
		for _, input := range inputs {
			normalized, err := NormalizePhone(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, "+14155552671", normalized, "input %q", input)
		}
	})

	t.Run("accepts international numbers with plus prefix", func(t *testing.T) {
		normalized, err := NormalizePhone("+442071838750")
		require.NoError(t, err)
		assert.Equal(t, "+442071838750", normalized)
	})

	t.Run("rejects plus prefix with too few digits", func(t *testing.T) {
		_, err := NormalizePhone("+123456789")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("rejects plus prefix with non-digit characters", func(t *testing.T) {
		_, err := NormalizePhone("+1 (415) 555-2671")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("rejects 11 digits without leading one", func(t *testing.T) {
		_, err := NormalizePhone("24155552671")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("rejects too short numbers", func(t *testing.T) {
		_, err := NormalizePhone("555-2671")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NormalizePhone("")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("drops leading country code from 11 digits", func(t *testing.T) {
		normalized, err := NormalizePhone("1-800-555-0123")
		require.NoError(t, err)
		assert.Equal(t, "+18005550123", normalized)
	})
}
