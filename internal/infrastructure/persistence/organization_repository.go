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

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by its ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SearchByName finds organizations whose name contains the normalized search text
func (r *GormOrganizationRepository) SearchByName(ctx context.Context, name string) ([]contragent.Organization, error) {
	var organizationModels []models.OrganizationModel
	pattern := "%" + contragent.Normalize(name) + "%"

	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", pattern).
		Order("name ASC").
		Find(&organizationModels).Error; err != nil {
		return nil, err
	}

	organizations := make([]contragent.Organization, len(organizationModels))
	for i, model := range organizationModels {
		organizations[i] = *model.ToDomain()
	}
	return organizations, nil
}

// Save creates or updates an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, organization *contragent.Organization) error {
	model := models.OrganizationModelFromDomain(organization)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ contragent.OrganizationRepository = (*GormOrganizationRepository)(nil)
