package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeMissingFields, http.StatusBadRequest},
		{ErrCodeWeakPassword, http.StatusBadRequest},
		{ErrCodeInvalidEmail, http.StatusBadRequest},
		{ErrCodeInvalidMemberID, http.StatusBadRequest},
		{ErrCodeInvalidGroupName, http.StatusBadRequest},
		{ErrCodeInvalidGroupNumber, http.StatusBadRequest},
		{ErrCodeValidationError, http.StatusBadRequest},
		{ErrCodePasswordMismatch, http.StatusBadRequest},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeInvalidResetToken, http.StatusUnauthorized},
		{ErrCodeUnauthenticated, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenError, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeUserNotFound, http.StatusNotFound},
		{ErrCodeExpertNotFound, http.StatusNotFound},
		{ErrCodeLocalGroupNotFound, http.StatusNotFound},
		{ErrCodeDuplicateEmail, http.StatusConflict},
		{ErrCodeDuplicateMemberID, http.StatusConflict},
		{ErrCodeDuplicateGroupNumber, http.StatusConflict},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_NOBODY_MAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponseEnvelope(t *testing.T) {
	t.Run("success omits error", func(t *testing.T) {
		raw, err := json.Marshal(NewSuccessResponse(map[string]string{"hello": "world"}))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"error"`)
		assert.Contains(t, string(raw), `"success":true`)
	})

	t.Run("error omits data", func(t *testing.T) {
		raw, err := json.Marshal(NewErrorResponse(ErrCodeUserNotFound, "User not found"))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"data"`)
		assert.Contains(t, string(raw), `"code":"USER_NOT_FOUND"`)
	})

	t.Run("pagination meta rounds up", func(t *testing.T) {
		resp := NewSuccessResponseWithMeta([]int{}, 41, 1, 20)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 3, resp.Meta.TotalPages)
	})

	t.Run("list request normalization", func(t *testing.T) {
		req := ListRequest{Page: 0, PageSize: 500}
		req.Normalize()
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 20, req.PageSize)
	})
}
