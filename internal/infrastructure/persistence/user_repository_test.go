package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
)

// setupDirectoryTestDB creates an in-memory SQLite database with the
// directory tables for testing
func setupDirectoryTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			member_id INTEGER UNIQUE,
			city TEXT,
			state TEXT,
			phone TEXT,
			role TEXT NOT NULL DEFAULT 'member',
			status TEXT NOT NULL DEFAULT 'pending',
			occupation TEXT,
			industry_id TEXT,
			background TEXT,
			availability_status TEXT NOT NULL DEFAULT 'available',
			show_contact_info INTEGER NOT NULL DEFAULT 0,
			local_group_id TEXT,
			profile_photo BLOB,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE local_groups (
			id TEXT PRIMARY KEY,
			group_name TEXT NOT NULL,
			group_number INTEGER NOT NULL UNIQUE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE industries (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE expertises (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			what_offering TEXT NOT NULL,
			who_would_benefit TEXT,
			why_choose_you TEXT,
			skills_not_offered TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE connection_requests (
			id TEXT PRIMARY KEY,
			seeker_id TEXT NOT NULL,
			expert_id TEXT NOT NULL,
			message TEXT NOT NULL,
			preferred_contact_method TEXT NOT NULL DEFAULT 'email',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE admin_actions (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			target_user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func newTestUser(t *testing.T, email string) *directory.User {
	user, err := directory.NewUser(email, "Ada", "Lovelace", "analytical1")
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "ada@example.org")
	require.NoError(t, repo.Create(ctx, user))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, directory.UserStatusPending, found.Status)
		assert.Equal(t, directory.UserRoleMember, found.Role)
	})

	t.Run("finds by email case-insensitively", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ADA@Example.org")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser(t, "grace@example.org")))

	exists, err := repo.ExistsByEmail(ctx, "GRACE@example.org")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.org")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_ExistsByMemberID(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "grace@example.org")
	memberID := 10042
	user.MemberID = &memberID
	require.NoError(t, repo.Create(ctx, user))

	exists, err := repo.ExistsByMemberID(ctx, 10042)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByMemberID(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_Update(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newTestUser(t, "ada@example.org")
	require.NoError(t, repo.Create(ctx, user))

	user.City = "London"
	user.Status = directory.UserStatusActive
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", found.City)
	assert.Equal(t, directory.UserStatusActive, found.Status)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	ada := newTestUser(t, "ada@example.org")
	ada.Occupation = "Mathematician"
	require.NoError(t, repo.Create(ctx, ada))

	grace, err := directory.NewUser("grace@example.org", "Grace", "Hopper", "compilers1")
	require.NoError(t, err)
	grace.Status = directory.UserStatusActive
	require.NoError(t, repo.Create(ctx, grace))

	t.Run("returns everyone without filter", func(t *testing.T) {
		users, total, err := repo.FindAll(ctx, directory.NewUserFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := directory.UserStatusActive
		filter := directory.NewUserFilter()
		filter.Status = &status

		users, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "grace@example.org", users[0].Email)
	})

	t.Run("filters by keyword", func(t *testing.T) {
		filter := directory.NewUserFilter()
		filter.Keyword = "mathemat"

		users, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "ada@example.org", users[0].Email)
	})

	t.Run("sorts by whitelisted column", func(t *testing.T) {
		filter := directory.NewUserFilter()
		filter.SortBy = "first_name"
		filter.SortOrder = "asc"

		users, _, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Ada", users[0].FirstName)
		assert.Equal(t, "Grace", users[1].FirstName)
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		filter := directory.NewUserFilter()
		filter.SortBy = "password_hash; DROP TABLE users"

		_, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestGormUserRepository_Experts(t *testing.T) {
	db := setupDirectoryTestDB(t)
	repo := NewGormUserRepository(db)
	expertiseRepo := NewGormExpertiseRepository(db)
	ctx := context.Background()

	// Active member with an expertise record
	expert, err := directory.NewUser("grace@example.org", "Grace", "Hopper", "compilers1")
	require.NoError(t, err)
	expert.Status = directory.UserStatusActive
	require.NoError(t, repo.Create(ctx, expert))

	expertise, err := directory.NewExpertise(expert.ID, "Compiler design")
	require.NoError(t, err)
	require.NoError(t, expertiseRepo.Create(ctx, expertise))

	// Active member without expertise
	plain, err := directory.NewUser("ada@example.org", "Ada", "Lovelace", "analytical1")
	require.NoError(t, err)
	plain.Status = directory.UserStatusActive
	require.NoError(t, repo.Create(ctx, plain))

	// Pending member with expertise must not count
	pending, err := directory.NewUser("alan@example.org", "Alan", "Turing", "enigmas12")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, pending))
	pendingExpertise, err := directory.NewExpertise(pending.ID, "Cryptanalysis")
	require.NoError(t, err)
	require.NoError(t, expertiseRepo.Create(ctx, pendingExpertise))

	t.Run("finds only active users with expertise", func(t *testing.T) {
		experts, total, err := repo.FindExperts(ctx, directory.NewUserFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, experts, 1)
		assert.Equal(t, "grace@example.org", experts[0].Email)
		assert.True(t, experts[0].IsExpert())
	})

	t.Run("counts experts", func(t *testing.T) {
		count, err := repo.CountExperts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reports expertise existence", func(t *testing.T) {
		has, err := repo.HasExpertise(ctx, expert.ID)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = repo.HasExpertise(ctx, plain.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})
}
