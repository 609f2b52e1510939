package membership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

type accountFixture struct {
	userRepo        *MockUserRepository
	industryRepo    *MockIndustryRepository
	adminActionRepo *MockAdminActionRepository
	groupRepo       *MockLocalGroupRepository
	sender          *recordingSender
	svc             *AccountService
}

func newAccountFixture() *accountFixture {
	f := &accountFixture{
		userRepo:        new(MockUserRepository),
		industryRepo:    new(MockIndustryRepository),
		adminActionRepo: new(MockAdminActionRepository),
		groupRepo:       new(MockLocalGroupRepository),
		sender:          &recordingSender{result: true},
	}
	f.svc = NewAccountService(
		f.userRepo,
		f.industryRepo,
		f.adminActionRepo,
		NewGroupResolver(f.groupRepo),
		f.sender,
		"https://app.example.org",
		zap.NewNop(),
	)
	return f
}

func newMember(t *testing.T, email string) *directory.User {
	user, err := directory.NewUser(email, "Ada", "Lovelace", "analytical1")
	require.NoError(t, err)
	return user
}

func newAdmin(t *testing.T) *directory.User {
	admin, err := directory.NewUser("admin@example.org", "Alice", "Admin", "secrets99")
	require.NoError(t, err)
	admin.Role = directory.UserRoleAdmin
	admin.Status = directory.UserStatusActive
	return admin
}

func strPtr(s string) *string { return &s }

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies simple profile changes", func(t *testing.T) {
		f := newAccountFixture()
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)

		updated, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:    target.ID,
			TargetID:   target.ID,
			City:       strPtr("London"),
			Occupation: strPtr("Mathematician"),
		})
		require.NoError(t, err)
		assert.Equal(t, "London", updated.City)
		assert.Equal(t, "Mathematician", updated.Occupation)

		f.adminActionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, f.sender.messages)
	})

	t.Run("aggregates validation problems without mutating", func(t *testing.T) {
		f := newAccountFixture()
		target := newMember(t, "ada@example.org")
		target.City = "Original"

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)

		_, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  target.ID,
			TargetID: target.ID,
			City:     strPtr("Changed"),
			Phone:    strPtr("12"),
		})
		assertDomainErrorCode(t, err, "VALIDATION_ERROR")
		assert.Contains(t, err.Error(), "phone")

		assert.Equal(t, "Original", target.City)
		f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("normalizes phone through the shared path", func(t *testing.T) {
		f := newAccountFixture()
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)

		updated, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  target.ID,
			TargetID: target.ID,
			Phone:    strPtr("415-555-2671"),
		})
		require.NoError(t, err)
		assert.Equal(t, "+14155552671", updated.Phone)
	})

	t.Run("aborts on unresolvable local group", func(t *testing.T) {
		f := newAccountFixture()
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.groupRepo.On("FindByName", ctx, "Atlantis").Return(nil, shared.ErrNotFound)

		_, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:    target.ID,
			TargetID:   target.ID,
			LocalGroup: strPtr("Atlantis"),
		})
		assertDomainErrorCode(t, err, "LOCAL_GROUP_NOT_FOUND")
		assert.Contains(t, err.Error(), "account update")
	})

	t.Run("records audit rows for status and role changes", func(t *testing.T) {
		f := newAccountFixture()
		admin := newAdmin(t)
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)
		f.adminActionRepo.On("Create", ctx, mock.AnythingOfType("*directory.AdminAction")).Return(nil)

		_, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  admin.ID,
			TargetID: target.ID,
			Status:   strPtr("active"),
			Role:     strPtr("admin"),
		})
		require.NoError(t, err)

		// One row per changed privileged field
		f.adminActionRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("sends approval email only on transition to active", func(t *testing.T) {
		f := newAccountFixture()
		admin := newAdmin(t)
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)
		f.adminActionRepo.On("Create", ctx, mock.AnythingOfType("*directory.AdminAction")).Return(nil)

		_, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  admin.ID,
			TargetID: target.ID,
			Status:   strPtr("active"),
		})
		require.NoError(t, err)

		require.Len(t, f.sender.messages, 1)
		assert.Equal(t, notification.TemplateAccountApproved, f.sender.messages[0].Template)
		assert.Equal(t, "ada@example.org", f.sender.messages[0].To)
	})

	t.Run("no approval email when already active", func(t *testing.T) {
		f := newAccountFixture()
		admin := newAdmin(t)
		target := newMember(t, "ada@example.org")
		target.Status = directory.UserStatusActive

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)
		f.adminActionRepo.On("Create", ctx, mock.AnythingOfType("*directory.AdminAction")).Return(nil)

		_, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  admin.ID,
			TargetID: target.ID,
			Role:     strPtr("admin"),
		})
		require.NoError(t, err)
		assert.Empty(t, f.sender.messages)
	})

	t.Run("audit failure does not roll back the update", func(t *testing.T) {
		f := newAccountFixture()
		admin := newAdmin(t)
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		f.userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
		f.userRepo.On("Update", ctx, target).Return(nil)
		f.adminActionRepo.On("Create", ctx, mock.AnythingOfType("*directory.AdminAction")).Return(assert.AnError)

		updated, err := f.svc.Update(ctx, UpdateAccountInput{
			ActorID:  admin.ID,
			TargetID: target.ID,
			Status:   strPtr("active"),
		})
		require.NoError(t, err)
		assert.Equal(t, directory.UserStatusActive, updated.Status)
	})

	t.Run("unknown target", func(t *testing.T) {
		f := newAccountFixture()
		target := newMember(t, "ada@example.org")

		f.userRepo.On("FindByID", ctx, target.ID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Update(ctx, UpdateAccountInput{ActorID: target.ID, TargetID: target.ID})
		assertDomainErrorCode(t, err, "USER_NOT_FOUND")
	})
}
