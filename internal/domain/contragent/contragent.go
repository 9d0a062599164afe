package contragent

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Contragent is the link record binding a person (or an organization, or
// both for an employee) to an address. It carries the denormalized search
// name used for free-text lookup and a soft-delete flag; links are never
// hard-deleted through the normal flow.
//
// Person and organization are nullable independently: a plain person link
// has no organization, an organization address link has no person, and an
// employee link without an address has neither address nor the address-id
// swap contract.
type Contragent struct {
	shared.BaseEntity
	PersonID       *uuid.UUID
	OrganizationID *uuid.UUID
	AddressID      *uuid.UUID
	SearchName     string
	PersonPosition string
	IsDeleted      bool
}

// NewPersonLink creates an active link binding a person to an address.
func NewPersonLink(personID, addressID uuid.UUID, searchName string) *Contragent {
	return &Contragent{
		BaseEntity: shared.NewBaseEntity(),
		PersonID:   &personID,
		AddressID:  &addressID,
		SearchName: searchName,
	}
}

// NewOrganizationLink creates an active link binding an organization to an
// address.
func NewOrganizationLink(organizationID, addressID uuid.UUID, searchName string) *Contragent {
	return &Contragent{
		BaseEntity:     shared.NewBaseEntity(),
		OrganizationID: &organizationID,
		AddressID:      &addressID,
		SearchName:     searchName,
	}
}

// NewEmployeeLink creates an active link binding a person to an
// organization with a job position. addressID may be nil when the
// employee is bound without an address.
func NewEmployeeLink(personID, organizationID uuid.UUID, addressID *uuid.UUID, position, searchName string) *Contragent {
	return &Contragent{
		BaseEntity:     shared.NewBaseEntity(),
		PersonID:       &personID,
		OrganizationID: &organizationID,
		AddressID:      addressID,
		SearchName:     searchName,
		PersonPosition: position,
	}
}

// IsEmployee reports whether the link represents an employee of an
// organization rather than a plain person or a company address.
func (c *Contragent) IsEmployee() bool {
	return c.PersonID != nil && c.OrganizationID != nil
}

// MarkDeleted soft-deletes the link. There is no resurrection path.
func (c *Contragent) MarkDeleted() {
	c.IsDeleted = true
	c.Touch()
}

// ReplaceSearchName rewrites the search name by literal substring
// substitution of the old identity concatenation with the new one. When
// the old value is not a substring, the search name is left unchanged;
// the rename silently skips this link. That matches the historical
// behavior and is relied on by callers that tolerate stale search names.
func (c *Contragent) ReplaceSearchName(oldText, newText string) {
	if oldText == "" {
		return
	}
	c.SearchName = strings.ReplaceAll(c.SearchName, oldText, newText)
	c.Touch()
}

// DisownAddress clears the address reference. Used before an address row
// is hard-deleted so links survive for history.
func (c *Contragent) DisownAddress() {
	c.AddressID = nil
	c.Touch()
}
