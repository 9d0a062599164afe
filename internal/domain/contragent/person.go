package contragent

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
)

// Person is a natural person. Names are normalized to uppercase on write.
// Distinct person rows may share a name; the registry never deduplicates
// persons by name alone.
type Person struct {
	shared.BaseEntity
	FirstName  string
	MiddleName string
	LastName   string
}

// NewPerson creates a person with normalized name fields.
func NewPerson(firstName, middleName, lastName string) *Person {
	return &Person{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  Normalize(firstName),
		MiddleName: Normalize(middleName),
		LastName:   Normalize(lastName),
	}
}

// FullName returns the stored first+middle+last concatenation.
func (p *Person) FullName() string {
	return p.FirstName + p.MiddleName + p.LastName
}

// Rename replaces the name fields and returns the old and new
// concatenations, which callers use to rewrite denormalized search names.
func (p *Person) Rename(firstName, middleName, lastName string) (oldFIO, newFIO string) {
	oldFIO = p.FullName()
	p.FirstName = Normalize(firstName)
	p.MiddleName = Normalize(middleName)
	p.LastName = Normalize(lastName)
	newFIO = p.FullName()
	p.Touch()
	return oldFIO, newFIO
}

// HasName reports whether at least one name field is present.
func (p *Person) HasName() bool {
	return p.FirstName != "" || p.MiddleName != "" || p.LastName != ""
}

// PersonQuery carries the optional-field search parameters for the person
// registry listing.
type PersonQuery struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// Validate checks the required search fields.
func (q PersonQuery) Validate() error {
	if strings.TrimSpace(q.LastName) == "" {
		return shared.NewInvalidArgument("Last name is empty")
	}
	return nil
}

// Conditions maps the present fields to equality predicates over
// normalized values. Absent fields do not constrain the query.
func (q PersonQuery) Conditions() []Condition {
	var conds []Condition
	if v := Normalize(q.FirstName); v != "" {
		conds = append(conds, eq("first_name", v))
	}
	if v := Normalize(q.MiddleName); v != "" {
		conds = append(conds, eq("middle_name", v))
	}
	if v := Normalize(q.LastName); v != "" {
		conds = append(conds, eq("last_name", v))
	}
	return conds
}

// StrongFindConditions builds the exact-match predicate set for person
// deduplication. Absent first and middle names must be stored as NULL;
// the last name constrains only when present.
func (p *Person) StrongFindConditions() []Condition {
	conds := []Condition{
		eqOrNull("first_name", p.FirstName),
		eqOrNull("middle_name", p.MiddleName),
	}
	if p.LastName != "" {
		conds = append(conds, eq("last_name", p.LastName))
	}
	return conds
}
