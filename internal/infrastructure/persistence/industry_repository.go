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

// GormIndustryRepository implements IndustryRepository using GORM
type GormIndustryRepository struct {
	db *gorm.DB
}

// NewGormIndustryRepository creates a new GormIndustryRepository
func NewGormIndustryRepository(db *gorm.DB) *GormIndustryRepository {
	return &GormIndustryRepository{db: db}
}

// Create creates a new industry
func (r *GormIndustryRepository) Create(ctx context.Context, industry *directory.Industry) error {
	model := models.IndustryModelFromDomain(industry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an industry by ID
func (r *GormIndustryRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Industry, error) {
	var model models.IndustryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all industries ordered by name
func (r *GormIndustryRepository) FindAll(ctx context.Context) ([]*directory.Industry, error) {
	var industryModels []*models.IndustryModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&industryModels).Error; err != nil {
		return nil, err
	}

	industries := make([]*directory.Industry, len(industryModels))
	for i, model := range industryModels {
		industries[i] = model.ToDomain()
	}
	return industries, nil
}

// Ensure GormIndustryRepository implements IndustryRepository
var _ directory.IndustryRepository = (*GormIndustryRepository)(nil)
