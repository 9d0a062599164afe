package contragent

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
)

// Address is a canonicalized postal address. Identity for deduplication is
// the exact match of all normalized fields, not the surrogate key: two
// addresses entered with identical fields (including identically blank
// optional ones) are the same address.
type Address struct {
	shared.BaseEntity
	PostalIndex     string
	Country         string
	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
}

// NewAddress creates an address with all identity fields normalized to
// uppercase. House and apartment numbers keep their original casing.
func NewAddress(postalIndex, country, city, street, houseNumber, apartmentNumber string) *Address {
	return &Address{
		BaseEntity:      shared.NewBaseEntity(),
		PostalIndex:     Normalize(postalIndex),
		Country:         Normalize(country),
		City:            Normalize(city),
		Street:          Normalize(street),
		HouseNumber:     strings.TrimSpace(houseNumber),
		ApartmentNumber: strings.TrimSpace(apartmentNumber),
	}
}

// StrongFindConditions builds the exact-match predicate set used for
// deduplication: every present field must match, every absent field must
// be stored as NULL.
func (a *Address) StrongFindConditions() []Condition {
	return []Condition{
		eqOrNull("postal_index", a.PostalIndex),
		eqOrNull("country", a.Country),
		eqOrNull("city", a.City),
		eqOrNull("street", a.Street),
		eqOrNull("house_number", a.HouseNumber),
		eqOrNull("apartment_number", a.ApartmentNumber),
	}
}

// AddressQuery carries the optional-field search parameters for the
// address registry listing.
type AddressQuery struct {
	PostalIndex     string
	Country         string
	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
}

// Validate checks the required search fields.
func (q AddressQuery) Validate() error {
	if strings.TrimSpace(q.Country) == "" {
		return shared.NewInvalidArgument("Country is empty")
	}
	if strings.TrimSpace(q.City) == "" {
		return shared.NewInvalidArgument("City is empty")
	}
	if strings.TrimSpace(q.Street) == "" {
		return shared.NewInvalidArgument("Street is empty")
	}
	return nil
}

// Conditions maps the present fields to equality predicates. Unlike
// StrongFindConditions, absent optional fields do not constrain the query.
func (q AddressQuery) Conditions() []Condition {
	conds := []Condition{
		eq("country", Normalize(q.Country)),
		eq("city", Normalize(q.City)),
		eq("street", Normalize(q.Street)),
	}
	if v := Normalize(q.PostalIndex); v != "" {
		conds = append(conds, eq("postal_index", v))
	}
	if v := strings.TrimSpace(q.HouseNumber); v != "" {
		conds = append(conds, eq("house_number", v))
	}
	if v := strings.TrimSpace(q.ApartmentNumber); v != "" {
		conds = append(conds, eq("apartment_number", v))
	}
	return conds
}
