package contragent

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
)

// =============================================================================
// Request DTOs
// =============================================================================

// AddressRequest carries the fields of a postal address
type AddressRequest struct {
	PostalIndex     string `json:"postal_index" binding:"max=20"`
	Country         string `json:"country" binding:"max=100"`
	City            string `json:"city" binding:"max=100"`
	Street          string `json:"street" binding:"max=200"`
	HouseNumber     string `json:"house_number" binding:"max=20"`
	ApartmentNumber string `json:"apartment_number" binding:"max=20"`
}

// IsEmpty reports whether no address field is filled
func (r AddressRequest) IsEmpty() bool {
	return strings.TrimSpace(r.PostalIndex) == "" &&
		strings.TrimSpace(r.Country) == "" &&
		strings.TrimSpace(r.City) == "" &&
		strings.TrimSpace(r.Street) == "" &&
		strings.TrimSpace(r.HouseNumber) == "" &&
		strings.TrimSpace(r.ApartmentNumber) == ""
}

// EmployeeRequest carries the fields of one employee of a company
type EmployeeRequest struct {
	ID         *uuid.UUID `json:"id"`
	FirstName  string     `json:"first_name" binding:"max=100"`
	MiddleName string     `json:"middle_name" binding:"max=100"`
	LastName   string     `json:"last_name" binding:"max=100"`
	Position   string     `json:"position" binding:"max=200"`
}

// IsEmpty reports whether no name field is filled
func (r EmployeeRequest) IsEmpty() bool {
	return strings.TrimSpace(r.FirstName) == "" &&
		strings.TrimSpace(r.MiddleName) == "" &&
		strings.TrimSpace(r.LastName) == ""
}

// SaveContragentRequest is the top-level creation request for a new
// counterparty, a person or a company with nested addresses and employees.
type SaveContragentRequest struct {
	Type        string            `json:"type" binding:"omitempty,oneof=person company"`
	FirstName   string            `json:"first_name" binding:"max=100"`
	MiddleName  string            `json:"middle_name" binding:"max=100"`
	LastName    string            `json:"last_name" binding:"max=100"`
	CompanyName string            `json:"company_name" binding:"max=200"`
	Addresses   []AddressRequest  `json:"addresses"`
	Employees   []EmployeeRequest `json:"employees"`
}

// UpdatePersonRequest renames a person
type UpdatePersonRequest struct {
	ID         uuid.UUID `json:"id" binding:"required"`
	FirstName  string    `json:"first_name" binding:"max=100"`
	MiddleName string    `json:"middle_name" binding:"max=100"`
	LastName   string    `json:"last_name" binding:"max=100"`
}

// UpdateAddressRequest rewrites an address row
type UpdateAddressRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	AddressRequest
}

// UpdateOrganizationRequest renames an organization
type UpdateOrganizationRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required,max=200"`
}

// UpdateEmployeeRequest updates an employee link and its person
type UpdateEmployeeRequest struct {
	ID         *uuid.UUID `json:"id"`
	FirstName  string     `json:"first_name" binding:"max=100"`
	MiddleName string     `json:"middle_name" binding:"max=100"`
	LastName   string     `json:"last_name" binding:"max=100"`
	Position   string     `json:"position" binding:"max=200"`
}

// BindEmployeeWithAddressRequest is the two-phase employee bind: the
// employee and the address are resolved or created, then linked to the
// organization.
type BindEmployeeWithAddressRequest struct {
	OrganizationID uuid.UUID       `json:"organization_id" binding:"required"`
	Employee       EmployeeRequest `json:"employee"`
	Address        AddressRequest  `json:"address"`
}

// =============================================================================
// Response DTOs
// =============================================================================

// AddressResponse represents an address in API responses. When projected
// through a person or organization the ID is the owning link's id, so
// callers delete the link rather than the shared address row.
type AddressResponse struct {
	ID              uuid.UUID `json:"id"`
	PostalIndex     string    `json:"postal_index"`
	Country         string    `json:"country"`
	City            string    `json:"city"`
	Street          string    `json:"street"`
	HouseNumber     string    `json:"house_number"`
	ApartmentNumber string    `json:"apartment_number"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain Address to a response
func ToAddressResponse(a *contragent.Address) AddressResponse {
	return AddressResponse{
		ID:              a.ID,
		PostalIndex:     a.PostalIndex,
		Country:         a.Country,
		City:            a.City,
		Street:          a.Street,
		HouseNumber:     a.HouseNumber,
		ApartmentNumber: a.ApartmentNumber,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// PersonResponse represents a person in API responses
type PersonResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name"`
	LastName   string    `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToPersonResponse converts a domain Person to a response
func ToPersonResponse(p *contragent.Person) PersonResponse {
	return PersonResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToOrganizationResponse converts a domain Organization to a response
func ToOrganizationResponse(o *contragent.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// EmployeeResponse represents one employee link of an organization.
// The ID is the link's id.
type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	PersonID   uuid.UUID `json:"person_id"`
	FirstName  string    `json:"first_name"`
	MiddleName string    `json:"middle_name"`
	LastName   string    `json:"last_name"`
	Position   string    `json:"position"`
}

// ContragentResponse represents a link aggregate: the link row plus the
// person, organization and address it references.
type ContragentResponse struct {
	ID           uuid.UUID             `json:"id"`
	SearchName   string                `json:"search_name"`
	Position     string                `json:"position,omitempty"`
	IsDeleted    bool                  `json:"is_deleted"`
	Person       *PersonResponse       `json:"person,omitempty"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	Address      *AddressResponse      `json:"address,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
