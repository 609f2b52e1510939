package directory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates pending member with defaults", func(t *testing.T) {
		user, err := NewUser("Jane.Doe@Example.COM", "Jane", "Doe", "password1")
		require.NoError(t, err)

		assert.Equal(t, "jane.doe@example.com", user.Email)
		assert.Equal(t, UserStatusPending, user.Status)
		assert.Equal(t, UserRoleMember, user.Role)
		assert.Equal(t, AvailabilityStatusAvailable, user.AvailabilityStatus)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "password1", user.PasswordHash)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Jane", "Doe", "password1")
		assert.Error(t, err)
	})

	t.Run("verify password matches", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "Jane", "Doe", "password1")
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("password1"))
		assert.False(t, user.VerifyPassword("wrong"))
	})
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("jane@example.com", "Jane", "Doe", "password1")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("newpassword2"))
	assert.True(t, user.VerifyPassword("newpassword2"))
	assert.False(t, user.VerifyPassword("password1"))
}

func TestUser_DisplayName(t *testing.T) {
	t.Run("full name", func(t *testing.T) {
		user := &User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
		assert.Equal(t, "Jane Doe", user.DisplayName())
	})

	t.Run("falls back to email", func(t *testing.T) {
		user := &User{Email: "jane@example.com"}
		assert.Equal(t, "jane@example.com", user.DisplayName())
	})
}

func TestUser_IsExpert(t *testing.T) {
	user := &User{}
	assert.False(t, user.IsExpert())

	user.Expertises = []Expertise{{WhatOffering: "Tax advice"}}
	assert.True(t, user.IsExpert())
}

func TestDefaultPasswordPolicy(t *testing.T) {
	assert.NoError(t, DefaultPasswordPolicy("password1"))
	assert.ErrorIs(t, DefaultPasswordPolicy("short1"), ErrWeakPassword)
	assert.ErrorIs(t, DefaultPasswordPolicy("passwordonly"), ErrWeakPassword)
	assert.ErrorIs(t, DefaultPasswordPolicy("12345678"), ErrWeakPassword)
}

func TestContactMethod_Label(t *testing.T) {
	assert.Equal(t, "Email", ContactMethodEmail.Label())
	assert.Equal(t, "Phone call", ContactMethodPhone.Label())
	assert.Equal(t, "Video call (Zoom, etc.)", ContactMethodVideoCall.Label())
	assert.Equal(t, "In-person meeting", ContactMethodInPerson.Label())
	assert.Equal(t, "Other (specify in message)", ContactMethodOther.Label())
	assert.Equal(t, "carrier_pigeon", ContactMethod("carrier_pigeon").Label())
}

func TestNewStatusChangeAction(t *testing.T) {
	actor := &User{FirstName: "Ada", LastName: "Admin"}
	actor.ID = uuid.New()
	target := &User{FirstName: "Jane", LastName: "Doe"}
	target.ID = uuid.New()

	action := NewStatusChangeAction(actor, target, UserStatusPending, UserStatusActive)
	assert.Equal(t, actor.ID, action.AdminID)
	assert.Equal(t, target.ID, action.TargetUserID)
	assert.Equal(t, "Ada Admin changed status of Jane Doe from 'pending' to 'active'", action.Action)
}
