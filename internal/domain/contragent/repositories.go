package contragent

import (
	"context"

	"github.com/google/uuid"
)

// AddressRepository defines persistence for the address registry.
type AddressRepository interface {
	// FindByID finds an address by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)

	// FindByConditions finds all addresses matching the given predicates
	FindByConditions(ctx context.Context, conds []Condition) ([]Address, error)

	// FindOneByConditions finds the single address matching the given
	// predicates, returning shared.ErrNotFound when there is none
	FindOneByConditions(ctx context.Context, conds []Condition) (*Address, error)

	// Save creates or updates an address
	Save(ctx context.Context, address *Address) error

	// Delete hard-deletes an address row
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonRepository defines persistence for the person registry.
type PersonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)
	FindByConditions(ctx context.Context, conds []Condition) ([]Person, error)
	FindOneByConditions(ctx context.Context, conds []Condition) (*Person, error)
	Save(ctx context.Context, person *Person) error
}

// OrganizationRepository defines persistence for the organization registry.
type OrganizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)

	// SearchByName finds organizations whose name contains the normalized
	// search text
	SearchByName(ctx context.Context, name string) ([]Organization, error)

	Save(ctx context.Context, organization *Organization) error
}

// ContragentRepository defines persistence for the link records.
type ContragentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contragent, error)

	// FindByPersonID returns every link of a person, deleted ones included
	FindByPersonID(ctx context.Context, personID uuid.UUID) ([]Contragent, error)

	// FindActiveByPersonID returns the person's links not marked deleted
	FindActiveByPersonID(ctx context.Context, personID uuid.UUID) ([]Contragent, error)

	// FindByOrganizationID returns every link of an organization
	FindByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]Contragent, error)

	// FindActiveByOrganizationID returns the organization's links not
	// marked deleted
	FindActiveByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]Contragent, error)

	// FindByAddressID returns every link referencing an address
	FindByAddressID(ctx context.Context, addressID uuid.UUID) ([]Contragent, error)

	// SearchActive finds links whose search name contains the normalized
	// text, excluding soft-deleted rows
	SearchActive(ctx context.Context, text string) ([]Contragent, error)

	// HasActivePlainPersonLink reports whether the person has at least one
	// active link with no organization
	HasActivePlainPersonLink(ctx context.Context, personID uuid.UUID) (bool, error)

	Save(ctx context.Context, link *Contragent) error
}
