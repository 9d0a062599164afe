package docflow

import (
	"github.com/documentflow/backend/internal/domain/shared"
)

// BusinessKey identifies a document state independently of its row ID.
type BusinessKey string

const (
	StateRegistered BusinessKey = "REGISTERED"
	StateOnSigning  BusinessKey = "ON_SIGNING"
	StateSigned     BusinessKey = "SIGNED"
	StateDeleted    BusinessKey = "DELETED"
	StateArchived   BusinessKey = "ARCHIVED"
)

// State is a row of the small fixed state lookup table. Documents point at
// states by ID; transitions are direct assignment with no validity check,
// which the service layer documents rather than enforces.
type State struct {
	shared.BaseEntity
	BusinessKey BusinessKey
	Name        string
}

// NewState creates a state lookup row.
func NewState(key BusinessKey, name string) *State {
	return &State{
		BaseEntity:  shared.NewBaseEntity(),
		BusinessKey: key,
		Name:        name,
	}
}

// IsTerminal reports whether a document in this state leaves the normal
// outgoing-document flow: such documents are not moved to DELETED again.
func (s *State) IsTerminal() bool {
	switch s.BusinessKey {
	case StateSigned, StateDeleted, StateArchived:
		return true
	}
	return false
}
