package contragent

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
)

// Organization is a legal entity counterparty. Its name doubles as the
// search key carried by linked contragents.
type Organization struct {
	shared.BaseEntity
	Name string
}

// NewOrganization creates an organization with a normalized name.
func NewOrganization(name string) *Organization {
	return &Organization{
		BaseEntity: shared.NewBaseEntity(),
		Name:       Normalize(name),
	}
}

// Rename replaces the name and returns the old and new values for
// search-name rewriting on linked contragents.
func (o *Organization) Rename(name string) (oldName, newName string) {
	oldName = o.Name
	o.Name = Normalize(name)
	o.Touch()
	return oldName, o.Name
}

// OrganizationQuery carries the search parameters for the organization
// registry listing.
type OrganizationQuery struct {
	Name string
}

// Validate checks the required search fields.
func (q OrganizationQuery) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return shared.NewInvalidArgument("Company name is empty")
	}
	return nil
}
