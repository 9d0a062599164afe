package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// nullString maps an empty string to NULL. Registry deduplication relies
// on absent optional fields being stored as NULL, not as empty strings.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromNullString maps a NULL column back to the empty string.
func fromNullString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
