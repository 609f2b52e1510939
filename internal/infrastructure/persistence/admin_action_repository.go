package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/infrastructure/persistence/models"
)

// GormAdminActionRepository implements AdminActionRepository using GORM
type GormAdminActionRepository struct {
	db *gorm.DB
}

// NewGormAdminActionRepository creates a new GormAdminActionRepository
func NewGormAdminActionRepository(db *gorm.DB) *GormAdminActionRepository {
	return &GormAdminActionRepository{db: db}
}

// Create creates a new admin action record
func (r *GormAdminActionRepository) Create(ctx context.Context, action *directory.AdminAction) error {
	model := models.AdminActionModelFromDomain(action)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindAll returns admin actions with pagination, newest first
func (r *GormAdminActionRepository) FindAll(ctx context.Context, page, pageSize int) ([]*directory.AdminAction, int64, error) {
	var actionModels []*models.AdminActionModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AdminActionModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Admin").
		Preload("TargetUser").
		Find(&actionModels).Error; err != nil {
		return nil, 0, err
	}

	actions := make([]*directory.AdminAction, len(actionModels))
	for i, model := range actionModels {
		actions[i] = model.ToDomain()
	}
	return actions, total, nil
}

// FindByTargetUserID returns all admin actions recorded against a user
func (r *GormAdminActionRepository) FindByTargetUserID(ctx context.Context, targetUserID uuid.UUID) ([]*directory.AdminAction, error) {
	var actionModels []*models.AdminActionModel
	if err := r.db.WithContext(ctx).
		Where("target_user_id = ?", targetUserID).
		Order("created_at DESC").
		Preload("Admin").
		Find(&actionModels).Error; err != nil {
		return nil, err
	}

	actions := make([]*directory.AdminAction, len(actionModels))
	for i, model := range actionModels {
		actions[i] = model.ToDomain()
	}
	return actions, nil
}

// Ensure GormAdminActionRepository implements AdminActionRepository
var _ directory.AdminActionRepository = (*GormAdminActionRepository)(nil)
