package docflow

import (
	"strings"
	"time"

	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocIn is an incoming document. The registration number is assigned once
// at creation and never changes.
type DocIn struct {
	shared.BaseEntity
	RegNumber    string
	RegDate      time.Time
	Sender       string
	Subject      string
	DocTypeID    uuid.UUID
	DepartmentID *uuid.UUID
	StateID      uuid.UUID
}

// NewDocIn registers an incoming document with the given number and state.
func NewDocIn(regNumber, sender, subject string, docTypeID uuid.UUID, departmentID *uuid.UUID, stateID uuid.UUID) (*DocIn, error) {
	if strings.TrimSpace(regNumber) == "" {
		return nil, shared.NewInvalidArgument("Registration number is empty")
	}
	if docTypeID == uuid.Nil {
		return nil, shared.NewInvalidArgument("Document type is not set")
	}
	return &DocIn{
		BaseEntity:   shared.NewBaseEntity(),
		RegNumber:    regNumber,
		RegDate:      time.Now(),
		Sender:       strings.TrimSpace(sender),
		Subject:      strings.TrimSpace(subject),
		DocTypeID:    docTypeID,
		DepartmentID: departmentID,
		StateID:      stateID,
	}, nil
}

// SetState assigns a new state. Any state may follow any state; the
// lookup table does not encode allowed transitions.
func (d *DocIn) SetState(stateID uuid.UUID) {
	d.StateID = stateID
	d.Touch()
}
