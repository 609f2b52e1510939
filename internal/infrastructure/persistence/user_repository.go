package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *directory.User) error {
	model := models.UserModelFromDomain(user)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *directory.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a user by ID with associations preloaded
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Preload("Expertises").
		Preload("Industry").
		Preload("LocalGroup").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*directory.User, error) {
	if email == "" {
		return nil, shared.ErrNotFound
	}
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if an email already exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByMemberID checks if a membership number is already claimed
func (r *GormUserRepository) ExistsByMemberID(ctx context.Context, memberID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("member_id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns users matching the filter with pagination
func (r *GormUserRepository) FindAll(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	var userModels []*models.UserModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(sortClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Preload("Industry").
		Preload("LocalGroup").
		Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*directory.User, len(userModels))
	for i, model := range userModels {
		users[i] = model.ToDomain()
	}

	return users, total, nil
}

// FindExperts returns active users that have at least one expertise
func (r *GormUserRepository) FindExperts(ctx context.Context, filter directory.UserFilter) ([]*directory.User, int64, error) {
	var userModels []*models.UserModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("status = ?", directory.UserStatusActive).
		Where("EXISTS (SELECT 1 FROM expertises WHERE expertises.user_id = users.id)")
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order(sortClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Preload("Expertises").
		Preload("Industry").
		Preload("LocalGroup").
		Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*directory.User, len(userModels))
	for i, model := range userModels {
		users[i] = model.ToDomain()
	}

	return users, total, nil
}

// HasExpertise reports whether the user has at least one expertise record
func (r *GormUserRepository) HasExpertise(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ExpertiseModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountExperts returns the number of active users with at least one expertise
func (r *GormUserRepository) CountExperts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("status = ?", directory.UserStatusActive).
		Where("EXISTS (SELECT 1 FROM expertises WHERE expertises.user_id = users.id)").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormUserRepository) applyFilter(query *gorm.DB, filter directory.UserFilter) *gorm.DB {
	if filter.Keyword != "" {
		searchPattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(occupation) LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	return query
}

// sortClause builds a safe ORDER BY clause from the filter's sort options
func sortClause(filter directory.UserFilter) string {
	field := ValidateSortField(filter.SortBy, UserSortFields, "created_at")
	return field + " " + ValidateSortOrder(filter.SortOrder)
}

// Ensure GormUserRepository implements UserRepository
var _ directory.UserRepository = (*GormUserRepository)(nil)
