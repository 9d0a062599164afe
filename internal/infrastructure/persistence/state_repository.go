package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/domain/docflow"
	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/documentflow/backend/internal/infrastructure/persistence/models"
)

// GormStateRepository implements StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GormStateRepository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// FindByID finds a state by its ID
func (r *GormStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBusinessKey finds a state by its business key
func (r *GormStateRepository) FindByBusinessKey(ctx context.Context, key docflow.BusinessKey) (*docflow.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).First(&model, "business_key = ?", string(key)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every state lookup row
func (r *GormStateRepository) FindAll(ctx context.Context) ([]docflow.State, error) {
	var stateModels []models.StateModel
	if err := r.db.WithContext(ctx).Order("business_key ASC").Find(&stateModels).Error; err != nil {
		return nil, err
	}

	states := make([]docflow.State, len(stateModels))
	for i, model := range stateModels {
		states[i] = *model.ToDomain()
	}
	return states, nil
}

// Save creates or updates a state
func (r *GormStateRepository) Save(ctx context.Context, state *docflow.State) error {
	model := models.StateModelFromDomain(state)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ docflow.StateRepository = (*GormStateRepository)(nil)
