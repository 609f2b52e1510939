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

// GormConnectionRequestRepository implements ConnectionRequestRepository using GORM
type GormConnectionRequestRepository struct {
	db *gorm.DB
}

// NewGormConnectionRequestRepository creates a new GormConnectionRequestRepository
func NewGormConnectionRequestRepository(db *gorm.DB) *GormConnectionRequestRepository {
	return &GormConnectionRequestRepository{db: db}
}

// Create creates a new connection request
func (r *GormConnectionRequestRepository) Create(ctx context.Context, request *directory.ConnectionRequest) error {
	model := models.ConnectionRequestModelFromDomain(request)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a connection request by ID with both parties preloaded
func (r *GormConnectionRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.ConnectionRequest, error) {
	var model models.ConnectionRequestModel
	if err := r.db.WithContext(ctx).
		Preload("Seeker").
		Preload("Expert").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns connection requests with pagination, newest first
func (r *GormConnectionRequestRepository) FindAll(ctx context.Context, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&models.ConnectionRequestModel{}), page, pageSize)
}

// FindBySeekerID returns connection requests created by a seeker
func (r *GormConnectionRequestRepository) FindBySeekerID(ctx context.Context, seekerID uuid.UUID, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ConnectionRequestModel{}).
		Where("seeker_id = ?", seekerID)
	return r.findPage(ctx, query, page, pageSize)
}

// Count returns the total number of connection requests
func (r *GormConnectionRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ConnectionRequestModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormConnectionRequestRepository) findPage(ctx context.Context, query *gorm.DB, page, pageSize int) ([]*directory.ConnectionRequest, int64, error) {
	var requestModels []*models.ConnectionRequestModel
	var total int64

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
		Preload("Seeker").
		Preload("Expert").
		Find(&requestModels).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*directory.ConnectionRequest, len(requestModels))
	for i, model := range requestModels {
		requests[i] = model.ToDomain()
	}
	return requests, total, nil
}

// Ensure GormConnectionRequestRepository implements ConnectionRequestRepository
var _ directory.ConnectionRequestRepository = (*GormConnectionRequestRepository)(nil)
