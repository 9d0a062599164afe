package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/documentflow/backend/internal/infrastructure/persistence/models"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// applyConditions translates domain predicates into a WHERE clause.
func applyConditions(query *gorm.DB, conds []contragent.Condition) *gorm.DB {
	for _, c := range conds {
		switch c.Op {
		case contragent.OpIsNull:
			query = query.Where(fmt.Sprintf("%s IS NULL", c.Column))
		default:
			query = query.Where(fmt.Sprintf("%s = ?", c.Column), c.Value)
		}
	}
	return query
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByConditions finds all addresses matching the given predicates
func (r *GormAddressRepository) FindByConditions(ctx context.Context, conds []contragent.Condition) ([]contragent.Address, error) {
	var addressModels []models.AddressModel
	query := applyConditions(r.db.WithContext(ctx).Model(&models.AddressModel{}), conds)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]contragent.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// FindOneByConditions finds the single address matching the given predicates
func (r *GormAddressRepository) FindOneByConditions(ctx context.Context, conds []contragent.Condition) (*contragent.Address, error) {
	var model models.AddressModel
	query := applyConditions(r.db.WithContext(ctx).Model(&models.AddressModel{}), conds)

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *contragent.Address) error {
	model := models.AddressModelFromDomain(address)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete hard-deletes an address row
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ contragent.AddressRepository = (*GormAddressRepository)(nil)
