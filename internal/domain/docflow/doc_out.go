package docflow

import (
	"strings"
	"time"

	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocOut is an outgoing document. Unlike incoming documents it is never
// hard-deleted: removal assigns the DELETED state so the registration
// history stays intact.
type DocOut struct {
	shared.BaseEntity
	RegNumber    string
	CreateDate   time.Time
	Subject      string
	DocTypeID    uuid.UUID
	StateID      uuid.UUID
	CreatorID    uuid.UUID
	SignerID     *uuid.UUID
	ContragentID *uuid.UUID
}

// NewDocOut registers an outgoing document.
func NewDocOut(regNumber, subject string, docTypeID, stateID, creatorID uuid.UUID) (*DocOut, error) {
	if strings.TrimSpace(regNumber) == "" {
		return nil, shared.NewInvalidArgument("Registration number is empty")
	}
	if docTypeID == uuid.Nil {
		return nil, shared.NewInvalidArgument("Document type is not set")
	}
	if creatorID == uuid.Nil {
		return nil, shared.NewInvalidArgument("Creator is not set")
	}
	return &DocOut{
		BaseEntity: shared.NewBaseEntity(),
		RegNumber:  regNumber,
		CreateDate: time.Now(),
		Subject:    strings.TrimSpace(subject),
		DocTypeID:  docTypeID,
		StateID:    stateID,
		CreatorID:  creatorID,
	}, nil
}

// SetState assigns a new state by direct assignment.
func (d *DocOut) SetState(stateID uuid.UUID) {
	d.StateID = stateID
	d.Touch()
}

// AssignSigner sets the signing user.
func (d *DocOut) AssignSigner(signerID uuid.UUID) {
	d.SignerID = &signerID
	d.Touch()
}

// AddressTo sets the counterparty link the document is addressed to.
func (d *DocOut) AddressTo(contragentID uuid.UUID) {
	d.ContragentID = &contragentID
	d.Touch()
}
