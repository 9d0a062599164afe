package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/documentflow/backend/internal/infrastructure/persistence/models"
)

// GormContragentRepository implements ContragentRepository using GORM
type GormContragentRepository struct {
	db *gorm.DB
}

// NewGormContragentRepository creates a new GormContragentRepository
func NewGormContragentRepository(db *gorm.DB) *GormContragentRepository {
	return &GormContragentRepository{db: db}
}

// FindByID finds a link record by its ID
func (r *GormContragentRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Contragent, error) {
	var model models.ContragentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormContragentRepository) findWhere(ctx context.Context, query string, args ...interface{}) ([]contragent.Contragent, error) {
	var linkModels []models.ContragentModel
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]contragent.Contragent, len(linkModels))
	for i, model := range linkModels {
		links[i] = *model.ToDomain()
	}
	return links, nil
}

// FindByPersonID returns every link of a person, deleted ones included
func (r *GormContragentRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]contragent.Contragent, error) {
	return r.findWhere(ctx, "person_id = ?", personID)
}

// FindActiveByPersonID returns the person's links not marked deleted
func (r *GormContragentRepository) FindActiveByPersonID(ctx context.Context, personID uuid.UUID) ([]contragent.Contragent, error) {
	return r.findWhere(ctx, "person_id = ? AND is_deleted = ?", personID, false)
}

// FindByOrganizationID returns every link of an organization
func (r *GormContragentRepository) FindByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]contragent.Contragent, error) {
	return r.findWhere(ctx, "organization_id = ?", organizationID)
}

// FindActiveByOrganizationID returns the organization's links not marked deleted
func (r *GormContragentRepository) FindActiveByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]contragent.Contragent, error) {
	return r.findWhere(ctx, "organization_id = ? AND is_deleted = ?", organizationID, false)
}

// FindByAddressID returns every link referencing an address
func (r *GormContragentRepository) FindByAddressID(ctx context.Context, addressID uuid.UUID) ([]contragent.Contragent, error) {
	return r.findWhere(ctx, "address_id = ?", addressID)
}

// SearchActive finds links whose search name contains the normalized text,
// excluding soft-deleted rows
func (r *GormContragentRepository) SearchActive(ctx context.Context, text string) ([]contragent.Contragent, error) {
	pattern := "%" + contragent.Normalize(text) + "%"
	return r.findWhere(ctx, "search_name LIKE ? AND is_deleted = ?", pattern, false)
}

// HasActivePlainPersonLink reports whether the person has at least one active
// link with no organization
func (r *GormContragentRepository) HasActivePlainPersonLink(ctx context.Context, personID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContragentModel{}).
		Where("person_id = ? AND organization_id IS NULL AND is_deleted = ?", personID, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a link record
func (r *GormContragentRepository) Save(ctx context.Context, link *contragent.Contragent) error {
	model := models.ContragentModelFromDomain(link)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ contragent.ContragentRepository = (*GormContragentRepository)(nil)
