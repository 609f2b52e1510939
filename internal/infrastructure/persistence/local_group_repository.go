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

// GormLocalGroupRepository implements LocalGroupRepository using GORM
type GormLocalGroupRepository struct {
	db *gorm.DB
}

// NewGormLocalGroupRepository creates a new GormLocalGroupRepository
func NewGormLocalGroupRepository(db *gorm.DB) *GormLocalGroupRepository {
	return &GormLocalGroupRepository{db: db}
}

// Create creates a new local group
func (r *GormLocalGroupRepository) Create(ctx context.Context, group *directory.LocalGroup) error {
	model := models.LocalGroupModelFromDomain(group)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a local group by ID
func (r *GormLocalGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.LocalGroup, error) {
	var model models.LocalGroupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a local group by its group number
func (r *GormLocalGroupRepository) FindByNumber(ctx context.Context, number int) (*directory.LocalGroup, error) {
	var model models.LocalGroupModel
	if err := r.db.WithContext(ctx).
		Where("group_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a local group by name, case-insensitively
func (r *GormLocalGroupRepository) FindByName(ctx context.Context, name string) (*directory.LocalGroup, error) {
	var model models.LocalGroupModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(group_name) = ?", strings.ToLower(name)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all local groups ordered by group number
func (r *GormLocalGroupRepository) FindAll(ctx context.Context) ([]*directory.LocalGroup, error) {
	var groupModels []*models.LocalGroupModel
	if err := r.db.WithContext(ctx).
		Order("group_number ASC").
		Find(&groupModels).Error; err != nil {
		return nil, err
	}

	groups := make([]*directory.LocalGroup, len(groupModels))
	for i, model := range groupModels {
		groups[i] = model.ToDomain()
	}
	return groups, nil
}

// Ensure GormLocalGroupRepository implements LocalGroupRepository
var _ directory.LocalGroupRepository = (*GormLocalGroupRepository)(nil)
