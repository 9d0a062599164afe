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

// GormDocInRepository implements DocInRepository using GORM
type GormDocInRepository struct {
	db *gorm.DB
}

// NewGormDocInRepository creates a new GormDocInRepository
func NewGormDocInRepository(db *gorm.DB) *GormDocInRepository {
	return &GormDocInRepository{db: db}
}

// FindByID finds an incoming document by its ID
func (r *GormDocInRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocIn, error) {
	var model models.DocInModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of incoming documents ordered by registration date ascending
func (r *GormDocInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]docflow.DocIn, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DocInModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docModels []models.DocInModel
	if err := query.
		Order("reg_date ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&docModels).Error; err != nil {
		return nil, 0, err
	}

	docs := make([]docflow.DocIn, len(docModels))
	for i, model := range docModels {
		docs[i] = *model.ToDomain()
	}
	return docs, total, nil
}

// Save creates or updates an incoming document
func (r *GormDocInRepository) Save(ctx context.Context, doc *docflow.DocIn) error {
	model := models.DocInModelFromDomain(doc)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete hard-deletes an incoming document
func (r *GormDocInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DocInModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ docflow.DocInRepository = (*GormDocInRepository)(nil)
