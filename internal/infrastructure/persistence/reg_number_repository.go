package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/documentflow/backend/internal/domain/docflow"
)

// GormRegNumberRepository implements RegNumberRepository using GORM.
// Each (kind, year) pair has its own counter row.
type GormRegNumberRepository struct {
	db *gorm.DB
}

// NewGormRegNumberRepository creates a new GormRegNumberRepository
func NewGormRegNumberRepository(db *gorm.DB) *GormRegNumberRepository {
	return &GormRegNumberRepository{db: db}
}

// NextNumber atomically increments and returns the sequence value for the
// given kind and year. The upsert keeps concurrent registrations from
// handing out the same number.
func (r *GormRegNumberRepository) NextNumber(ctx context.Context, kind string, year int) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO reg_number_sequences (kind, year, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (kind, year)
		DO UPDATE SET last_value = reg_number_sequences.last_value + 1
		RETURNING last_value`,
		kind, year,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

var _ docflow.RegNumberRepository = (*GormRegNumberRepository)(nil)
