package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberconnect/backend/internal/domain/directory"
)

func TestGormConnectionRequestRepository(t *testing.T) {
	db := setupDirectoryTestDB(t)
	userRepo := NewGormUserRepository(db)
	repo := NewGormConnectionRequestRepository(db)
	ctx := context.Background()

	seeker := newTestUser(t, "seeker@example.org")
	require.NoError(t, userRepo.Create(ctx, seeker))

	expert, err := directory.NewUser("expert@example.org", "Grace", "Hopper", "compilers1")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, expert))

	request, err := directory.NewConnectionRequest(seeker.ID, expert.ID, "Would love advice", directory.ContactMethodPhone)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, request))

	t.Run("finds by id with both parties", func(t *testing.T) {
		found, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, "Would love advice", found.Message)
		assert.Equal(t, directory.ContactMethodPhone, found.PreferredContactMethod)
		require.NotNil(t, found.Seeker)
		require.NotNil(t, found.Expert)
		assert.Equal(t, "seeker@example.org", found.Seeker.Email)
		assert.Equal(t, "expert@example.org", found.Expert.Email)
	})

	t.Run("lists by seeker", func(t *testing.T) {
		requests, total, err := repo.FindBySeekerID(ctx, seeker.ID, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, requests, 1)
	})

	t.Run("counts requests", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormAdminActionRepository(t *testing.T) {
	db := setupDirectoryTestDB(t)
	userRepo := NewGormUserRepository(db)
	repo := NewGormAdminActionRepository(db)
	ctx := context.Background()

	admin, err := directory.NewUser("admin@example.org", "Alice", "Admin", "secrets99")
	require.NoError(t, err)
	admin.Role = directory.UserRoleAdmin
	require.NoError(t, userRepo.Create(ctx, admin))

	target := newTestUser(t, "member@example.org")
	require.NoError(t, userRepo.Create(ctx, target))

	action := directory.NewStatusChangeAction(admin, target, directory.UserStatusPending, directory.UserStatusActive)
	require.NoError(t, repo.Create(ctx, action))

	t.Run("lists actions with admin preloaded", func(t *testing.T) {
		actions, total, err := repo.FindAll(ctx, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, actions, 1)
		assert.Contains(t, actions[0].Action, "changed status")
		require.NotNil(t, actions[0].Admin)
		assert.Equal(t, "admin@example.org", actions[0].Admin.Email)
	})

	t.Run("lists actions for a target user", func(t *testing.T) {
		actions, err := repo.FindByTargetUserID(ctx, target.ID)
		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, admin.ID, actions[0].AdminID)
	})
}
