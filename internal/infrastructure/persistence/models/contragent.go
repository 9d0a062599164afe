package models

import (
	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
)

// AddressModel is the persistence model for the Address registry entry.
// Optional fields are nullable so exact-match deduplication can distinguish
// an absent field from a present one.
type AddressModel struct {
	BaseModel
	PostalIndex     *string `gorm:"type:varchar(20)"`
	Country         *string `gorm:"type:varchar(100);index"`
	City            *string `gorm:"type:varchar(100);index"`
	Street          *string `gorm:"type:varchar(200);index"`
	HouseNumber     *string `gorm:"type:varchar(20)"`
	ApartmentNumber *string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *contragent.Address {
	return &contragent.Address{
		BaseEntity:      m.BaseModel.ToDomain(),
		PostalIndex:     fromNullString(m.PostalIndex),
		Country:         fromNullString(m.Country),
		City:            fromNullString(m.City),
		Street:          fromNullString(m.Street),
		HouseNumber:     fromNullString(m.HouseNumber),
		ApartmentNumber: fromNullString(m.ApartmentNumber),
	}
}

// FromDomain populates the persistence model from a domain Address entity.
func (m *AddressModel) FromDomain(a *contragent.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.PostalIndex = nullString(a.PostalIndex)
	m.Country = nullString(a.Country)
	m.City = nullString(a.City)
	m.Street = nullString(a.Street)
	m.HouseNumber = nullString(a.HouseNumber)
	m.ApartmentNumber = nullString(a.ApartmentNumber)
}

// AddressModelFromDomain creates a new persistence model from a domain Address entity.
func AddressModelFromDomain(a *contragent.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomain(a)
	return m
}

// PersonModel is the persistence model for the Person registry entry.
type PersonModel struct {
	BaseModel
	FirstName  *string `gorm:"type:varchar(100);index"`
	MiddleName *string `gorm:"type:varchar(100)"`
	LastName   *string `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "persons"
}

// ToDomain converts the persistence model to a domain Person entity.
func (m *PersonModel) ToDomain() *contragent.Person {
	return &contragent.Person{
		BaseEntity: m.BaseModel.ToDomain(),
		FirstName:  fromNullString(m.FirstName),
		MiddleName: fromNullString(m.MiddleName),
		LastName:   fromNullString(m.LastName),
	}
}

// FromDomain populates the persistence model from a domain Person entity.
func (m *PersonModel) FromDomain(p *contragent.Person) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.FirstName = nullString(p.FirstName)
	m.MiddleName = nullString(p.MiddleName)
	m.LastName = nullString(p.LastName)
}

// PersonModelFromDomain creates a new persistence model from a domain Person entity.
func PersonModelFromDomain(p *contragent.Person) *PersonModel {
	m := &PersonModel{}
	m.FromDomain(p)
	return m
}

// OrganizationModel is the persistence model for the Organization registry entry.
type OrganizationModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null;index"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the persistence model to a domain Organization entity.
func (m *OrganizationModel) ToDomain() *contragent.Organization {
	return &contragent.Organization{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Organization entity.
func (m *OrganizationModel) FromDomain(o *contragent.Organization) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
}

// OrganizationModelFromDomain creates a new persistence model from a domain Organization entity.
func OrganizationModelFromDomain(o *contragent.Organization) *OrganizationModel {
	m := &OrganizationModel{}
	m.FromDomain(o)
	return m
}

// ContragentModel is the persistence model for the counterparty link record.
type ContragentModel struct {
	BaseModel
	PersonID       *uuid.UUID `gorm:"type:uuid;index"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	AddressID      *uuid.UUID `gorm:"type:uuid;index"`
	SearchName     string     `gorm:"type:varchar(500);not null;index"`
	PersonPosition string     `gorm:"type:varchar(200)"`
	IsDeleted      bool       `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (ContragentModel) TableName() string {
	return "contragents"
}

// ToDomain converts the persistence model to a domain Contragent entity.
func (m *ContragentModel) ToDomain() *contragent.Contragent {
	return &contragent.Contragent{
		BaseEntity:     m.BaseModel.ToDomain(),
		PersonID:       m.PersonID,
		OrganizationID: m.OrganizationID,
		AddressID:      m.AddressID,
		SearchName:     m.SearchName,
		PersonPosition: m.PersonPosition,
		IsDeleted:      m.IsDeleted,
	}
}

// FromDomain populates the persistence model from a domain Contragent entity.
func (m *ContragentModel) FromDomain(c *contragent.Contragent) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.PersonID = c.PersonID
	m.OrganizationID = c.OrganizationID
	m.AddressID = c.AddressID
	m.SearchName = c.SearchName
	m.PersonPosition = c.PersonPosition
	m.IsDeleted = c.IsDeleted
}

// ContragentModelFromDomain creates a new persistence model from a domain Contragent entity.
func ContragentModelFromDomain(c *contragent.Contragent) *ContragentModel {
	m := &ContragentModel{}
	m.FromDomain(c)
	return m
}
