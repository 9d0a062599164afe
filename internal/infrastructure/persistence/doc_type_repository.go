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

// GormDocTypeRepository implements DocTypeRepository using GORM
type GormDocTypeRepository struct {
	db *gorm.DB
}

// NewGormDocTypeRepository creates a new GormDocTypeRepository
func NewGormDocTypeRepository(db *gorm.DB) *GormDocTypeRepository {
	return &GormDocTypeRepository{db: db}
}

// FindByID finds a document type by its ID
func (r *GormDocTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocType, error) {
	var model models.DocTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every document type
func (r *GormDocTypeRepository) FindAll(ctx context.Context) ([]docflow.DocType, error) {
	var typeModels []models.DocTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}

	types := make([]docflow.DocType, len(typeModels))
	for i, model := range typeModels {
		types[i] = *model.ToDomain()
	}
	return types, nil
}

// Save creates or updates a document type
func (r *GormDocTypeRepository) Save(ctx context.Context, docType *docflow.DocType) error {
	model := models.DocTypeModelFromDomain(docType)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ docflow.DocTypeRepository = (*GormDocTypeRepository)(nil)
