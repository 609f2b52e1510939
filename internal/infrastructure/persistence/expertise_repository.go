package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/memberconnect/backend/internal/domain/directory"
	"github.com/memberconnect/backend/internal/domain/shared"
	"github.com/memberconnect/backend/internal/infrastructure/persistence/models"
)

// GormExpertiseRepository implements ExpertiseRepository using GORM
type GormExpertiseRepository struct {
	db *gorm.DB
}

// NewGormExpertiseRepository creates a new GormExpertiseRepository
func NewGormExpertiseRepository(db *gorm.DB) *GormExpertiseRepository {
	return &GormExpertiseRepository{db: db}
}

// Create creates a new expertise record
func (r *GormExpertiseRepository) Create(ctx context.Context, expertise *directory.Expertise) error {
	model := models.ExpertiseModelFromDomain(expertise)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing expertise record
func (r *GormExpertiseRepository) Update(ctx context.Context, expertise *directory.Expertise) error {
	model := models.ExpertiseModelFromDomain(expertise)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an expertise record by ID
func (r *GormExpertiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpertiseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an expertise record by ID
func (r *GormExpertiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Expertise, error) {
	var model models.ExpertiseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns all expertise records for a user
func (r *GormExpertiseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*directory.Expertise, error) {
	var expertiseModels []*models.ExpertiseModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&expertiseModels).Error; err != nil {
		return nil, err
	}

	expertises := make([]*directory.Expertise, len(expertiseModels))
	for i, model := range expertiseModels {
		expertises[i] = model.ToDomain()
	}
	return expertises, nil
}

// Count returns the total number of expertise records
func (r *GormExpertiseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ExpertiseModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormExpertiseRepository implements ExpertiseRepository
var _ directory.ExpertiseRepository = (*GormExpertiseRepository)(nil)
