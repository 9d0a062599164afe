package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/docflow"
)

// StateModel is the persistence model for the document state lookup table.
type StateModel struct {
	BaseModel
	BusinessKey string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string {
	return "doc_states"
}

// ToDomain converts the persistence model to a domain State entity.
func (m *StateModel) ToDomain() *docflow.State {
	return &docflow.State{
		BaseEntity:  m.BaseModel.ToDomain(),
		BusinessKey: docflow.BusinessKey(m.BusinessKey),
		Name:        m.Name,
	}
}

// FromDomain populates the persistence model from a domain State entity.
func (m *StateModel) FromDomain(s *docflow.State) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.BusinessKey = string(s.BusinessKey)
	m.Name = s.Name
}

// StateModelFromDomain creates a new persistence model from a domain State entity.
func StateModelFromDomain(s *docflow.State) *StateModel {
	m := &StateModel{}
	m.FromDomain(s)
	return m
}

// DocTypeModel is the persistence model for the document type lookup table.
type DocTypeModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (DocTypeModel) TableName() string {
	return "doc_types"
}

// ToDomain converts the persistence model to a domain DocType entity.
func (m *DocTypeModel) ToDomain() *docflow.DocType {
	return &docflow.DocType{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain DocType entity.
func (m *DocTypeModel) FromDomain(t *docflow.DocType) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
}

// DocTypeModelFromDomain creates a new persistence model from a domain DocType entity.
func DocTypeModelFromDomain(t *docflow.DocType) *DocTypeModel {
	m := &DocTypeModel{}
	m.FromDomain(t)
	return m
}

// DocInModel is the persistence model for incoming documents.
type DocInModel struct {
	BaseModel
	RegNumber    string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	RegDate      time.Time  `gorm:"not null;index"`
	Sender       string     `gorm:"type:varchar(300)"`
	Subject      string     `gorm:"type:varchar(500)"`
	DocTypeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	StateID      uuid.UUID  `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (DocInModel) TableName() string {
	return "docs_in"
}

// ToDomain converts the persistence model to a domain DocIn entity.
func (m *DocInModel) ToDomain() *docflow.DocIn {
	return &docflow.DocIn{
		BaseEntity:   m.BaseModel.ToDomain(),
		RegNumber:    m.RegNumber,
		RegDate:      m.RegDate,
		Sender:       m.Sender,
		Subject:      m.Subject,
		DocTypeID:    m.DocTypeID,
		DepartmentID: m.DepartmentID,
		StateID:      m.StateID,
	}
}

// FromDomain populates the persistence model from a domain DocIn entity.
func (m *DocInModel) FromDomain(d *docflow.DocIn) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.RegNumber = d.RegNumber
	m.RegDate = d.RegDate
	m.Sender = d.Sender
	m.Subject = d.Subject
	m.DocTypeID = d.DocTypeID
	m.DepartmentID = d.DepartmentID
	m.StateID = d.StateID
}

// DocInModelFromDomain creates a new persistence model from a domain DocIn entity.
func DocInModelFromDomain(d *docflow.DocIn) *DocInModel {
	m := &DocInModel{}
	m.FromDomain(d)
	return m
}

// DocOutModel is the persistence model for outgoing documents.
type DocOutModel struct {
	BaseModel
	RegNumber    string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreateDate   time.Time  `gorm:"not null;index"`
	Subject      string     `gorm:"type:varchar(500)"`
	DocTypeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StateID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	SignerID     *uuid.UUID `gorm:"type:uuid;index"`
	ContragentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (DocOutModel) TableName() string {
	return "docs_out"
}

// ToDomain converts the persistence model to a domain DocOut entity.
func (m *DocOutModel) ToDomain() *docflow.DocOut {
	return &docflow.DocOut{
		BaseEntity:   m.BaseModel.ToDomain(),
		RegNumber:    m.RegNumber,
		CreateDate:   m.CreateDate,
		Subject:      m.Subject,
		DocTypeID:    m.DocTypeID,
		StateID:      m.StateID,
		CreatorID:    m.CreatorID,
		SignerID:     m.SignerID,
		ContragentID: m.ContragentID,
	}
}

// FromDomain populates the persistence model from a domain DocOut entity.
func (m *DocOutModel) FromDomain(d *docflow.DocOut) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.RegNumber = d.RegNumber
	m.CreateDate = d.CreateDate
	m.Subject = d.Subject
	m.DocTypeID = d.DocTypeID
	m.StateID = d.StateID
	m.CreatorID = d.CreatorID
	m.SignerID = d.SignerID
	m.ContragentID = d.ContragentID
}

// DocOutModelFromDomain creates a new persistence model from a domain DocOut entity.
func DocOutModelFromDomain(d *docflow.DocOut) *DocOutModel {
	m := &DocOutModel{}
	m.FromDomain(d)
	return m
}

// RegNumberSequenceModel backs the per-kind, per-year registration number
// sequences.
type RegNumberSequenceModel struct {
	Kind      string `gorm:"type:varchar(10);primaryKey"`
	Year      int    `gorm:"primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (RegNumberSequenceModel) TableName() string {
	return "reg_number_sequences"
}
