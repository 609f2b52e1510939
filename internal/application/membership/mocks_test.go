package membership

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/infrastructure/notification"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *directory.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *directory.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*directory.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByMemberID(ctx context.Context, memberID int) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*directory.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindExperts(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*directory.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) HasExpertise(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountExperts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLocalGroupRepository struct {
	mock.Mock
}

func (m *MockLocalGroupRepository) Create(ctx context.Context, group *directory.LocalGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockLocalGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.LocalGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.LocalGroup), args.Error(1)
}

func (m *MockLocalGroupRepository) FindByNumber(ctx context.Context, number int) (*directory.LocalGroup, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.LocalGroup), args.Error(1)
}

func (m *MockLocalGroupRepository) FindByName(ctx context.Context, name string) (*directory.LocalGroup, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.LocalGroup), args.Error(1)
}

func (m *MockLocalGroupRepository) FindAll(ctx context.Context) ([]*directory.LocalGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*directory.LocalGroup), args.Error(1)
}

type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) Create(ctx context.Context, industry *directory.Industry) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *MockIndustryRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Industry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Industry), args.Error(1)
}

func (m *MockIndustryRepository) FindAll(ctx context.Context) ([]*directory.Industry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*directory.Industry), args.Error(1)
}

type MockExpertiseRepository struct {
	mock.Mock
}

func (m *MockExpertiseRepository) Create(ctx context.Context, expertise *directory.Expertise) error {
	args := m.Called(ctx, expertise)
	return args.Error(0)
}

func (m *MockExpertiseRepository) Update(ctx context.Context, expertise *directory.Expertise) error {
	args := m.Called(ctx, expertise)
	return args.Error(0)
}

func (m *MockExpertiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpertiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Expertise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Expertise), args.Error(1)
}

func (m *MockExpertiseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*directory.Expertise, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*directory.Expertise), args.Error(1)
}

func (m *MockExpertiseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockConnectionRequestRepository struct {
	mock.Mock
}

func (m *MockConnectionRequestRepository) Create(ctx context.Context, request *directory.ConnectionRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockConnectionRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.ConnectionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.ConnectionRequest), args.Error(1)
}

func (m *MockConnectionRequestRepository) FindAll(ctx context.Context, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]*directory.ConnectionRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockConnectionRequestRepository) FindBySeekerID(ctx context.Context, seekerID uuid.UUID, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	args := m.Called(ctx, seekerID, page, pageSize)
	return args.Get(0).([]*directory.ConnectionRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockConnectionRequestRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminActionRepository struct {
	mock.Mock
}

func (m *MockAdminActionRepository) Create(ctx context.Context, action *directory.AdminAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockAdminActionRepository) FindAll(ctx context.Context, page, pageSize int) ([]*directory.AdminAction, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]*directory.AdminAction), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminActionRepository) FindByTargetUserID(ctx context.Context, targetUserID uuid.UUID) ([]*directory.AdminAction, error) {
	args := m.Called(ctx, targetUserID)
	return args.Get(0).([]*directory.AdminAction), args.Error(1)
}

// recordingSender captures notifications for assertions
type recordingSender struct {
	messages []notification.Message
	result   bool
}

func (s *recordingSender) Send(_ context.Context, msg notification.Message) bool {
	s.messages = append(s.messages, msg)
	return s.result
}
