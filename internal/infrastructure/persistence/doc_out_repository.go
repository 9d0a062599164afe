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

// GormDocOutRepository implements DocOutRepository using GORM
type GormDocOutRepository struct {
	db *gorm.DB
}

// NewGormDocOutRepository creates a new GormDocOutRepository
func NewGormDocOutRepository(db *gorm.DB) *GormDocOutRepository {
	return &GormDocOutRepository{db: db}
}

// FindByID finds an outgoing document by its ID
func (r *GormDocOutRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocOut, error) {
	var model models.DocOutModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns a page of outgoing documents ordered by creation date
// descending, constrained by the present filter fields
func (r *GormDocOutRepository) FindAll(ctx context.Context, filter shared.Filter, docFilter docflow.DocOutFilter) ([]docflow.DocOut, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DocOutModel{})

	if docFilter.StateID != nil {
		query = query.Where("state_id = ?", *docFilter.StateID)
	}
	if docFilter.DocTypeID != nil {
		query = query.Where("doc_type_id = ?", *docFilter.DocTypeID)
	}
	if docFilter.CreatorID != nil {
		query = query.Where("creator_id = ?", *docFilter.CreatorID)
	}
	if docFilter.SignerID != nil {
		query = query.Where("signer_id = ?", *docFilter.SignerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docModels []models.DocOutModel
	if err := query.
		Order("create_date DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&docModels).Error; err != nil {
		return nil, 0, err
	}

	docs := make([]docflow.DocOut, len(docModels))
	for i, model := range docModels {
		docs[i] = *model.ToDomain()
	}
	return docs, total, nil
}

// Save creates or updates an outgoing document
func (r *GormDocOutRepository) Save(ctx context.Context, doc *docflow.DocOut) error {
	model := models.DocOutModelFromDomain(doc)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ docflow.DocOutRepository = (*GormDocOutRepository)(nil)
