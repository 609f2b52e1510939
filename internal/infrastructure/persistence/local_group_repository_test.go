package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
)

func TestGormLocalGroupRepository(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormLocalGroupRepository(db)
	ctx := context.Background()

	group, err := directory.NewLocalGroup("Springfield", 204)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, group))

	other, err := directory.NewLocalGroup("Shelbyville", 117)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	t.Run("finds by number", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, 204)
		require.NoError(t, err)
		assert.Equal(t, "Springfield", found.GroupName)
	})

	t.Run("finds by name case-insensitively", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "springfield")
		require.NoError(t, err)
		assert.Equal(t, group.ID, found.ID)
	})

	t.Run("returns not found for unknown number", func(t *testing.T) {
		_, err := repo.FindByNumber(ctx, 999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists all ordered by number", func(t *testing.T) {
		groups, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, 117, groups[0].GroupNumber)
		assert.Equal(t, 204, groups[1].GroupNumber)
	})
}
