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

// GormPersonRepository implements PersonRepository using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByID finds a person by its ID
func (r *GormPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByConditions finds all persons matching the given predicates
func (r *GormPersonRepository) FindByConditions(ctx context.Context, conds []contragent.Condition) ([]contragent.Person, error) {
	var personModels []models.PersonModel
	query := applyConditions(r.db.WithContext(ctx).Model(&models.PersonModel{}), conds)

	if err := query.Order("last_name ASC").Find(&personModels).Error; err != nil {
		return nil, err
	}

	persons := make([]contragent.Person, len(personModels))
	for i, model := range personModels {
		persons[i] = *model.ToDomain()
	}
	return persons, nil
}

// FindOneByConditions finds the single person matching the given predicates
func (r *GormPersonRepository) FindOneByConditions(ctx context.Context, conds []contragent.Condition) (*contragent.Person, error) {
	var model models.PersonModel
	query := applyConditions(r.db.WithContext(ctx).Model(&models.PersonModel{}), conds)

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a person
func (r *GormPersonRepository) Save(ctx context.Context, person *contragent.Person) error {
	model := models.PersonModelFromDomain(person)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ contragent.PersonRepository = (*GormPersonRepository)(nil)
