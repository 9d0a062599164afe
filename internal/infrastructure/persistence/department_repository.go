package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/domain/identity"
	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/documentflow/backend/internal/infrastructure/persistence/models"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID finds a department by its ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every department
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]identity.Department, error) {
	var departmentModels []models.DepartmentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departmentModels).Error; err != nil {
		return nil, err
	}

	departments := make([]identity.Department, len(departmentModels))
	for i, model := range departmentModels {
		departments[i] = *model.ToDomain()
	}
	return departments, nil
}

// Save creates or updates a department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *identity.Department) error {
	model := models.DepartmentModelFromDomain(department)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ identity.DepartmentRepository = (*GormDepartmentRepository)(nil)
