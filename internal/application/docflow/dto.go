package docflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/docflow"
)

// CreateDocInRequest registers an incoming document. The registration
// number and the initial state are assigned by the service, not the
// caller.
type CreateDocInRequest struct {
	Sender       string     `json:"sender" binding:"required,max=300"`
	Subject      string     `json:"subject" binding:"required,max=500"`
	DocTypeID    uuid.UUID  `json:"doc_type_id" binding:"required"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// CreateDocOutRequest drafts an outgoing document. CreatorID comes from
// the authenticated user, not the payload.
type CreateDocOutRequest struct {
	Subject      string     `json:"subject" binding:"required,max=500"`
	DocTypeID    uuid.UUID  `json:"doc_type_id" binding:"required"`
	SignerID     *uuid.UUID `json:"signer_id"`
	ContragentID *uuid.UUID `json:"contragent_id"`
}

// UpdateDocOutRequest changes a document card. Zero-value fields are
// left untouched; state is assigned directly, there is no transition
// validity check.
type UpdateDocOutRequest struct {
	Subject      string     `json:"subject" binding:"max=500"`
	StateID      *uuid.UUID `json:"state_id"`
	SignerID     *uuid.UUID `json:"signer_id"`
	ContragentID *uuid.UUID `json:"contragent_id"`
}

// ListDocOutRequest carries the optional listing filters.
type ListDocOutRequest struct {
	StateID   *uuid.UUID `form:"state_id"`
	DocTypeID *uuid.UUID `form:"doc_type_id"`
	CreatorID *uuid.UUID `form:"creator_id"`
	SignerID  *uuid.UUID `form:"signer_id"`
}

// DocInResponse is the incoming document card.
type DocInResponse struct {
	ID           uuid.UUID  `json:"id"`
	RegNumber    string     `json:"reg_number"`
	RegDate      time.Time  `json:"reg_date"`
	Sender       string     `json:"sender"`
	Subject      string     `json:"subject"`
	DocTypeID    uuid.UUID  `json:"doc_type_id"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	StateID      uuid.UUID  `json:"state_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToDocInResponse converts a domain document to a response
func ToDocInResponse(d *docflow.DocIn) DocInResponse {
	return DocInResponse{
		ID:           d.ID,
		RegNumber:    d.RegNumber,
		RegDate:      d.RegDate,
		Sender:       d.Sender,
		Subject:      d.Subject,
		DocTypeID:    d.DocTypeID,
		DepartmentID: d.DepartmentID,
		StateID:      d.StateID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DocOutResponse is the outgoing document card.
type DocOutResponse struct {
	ID           uuid.UUID  `json:"id"`
	RegNumber    string     `json:"reg_number"`
	CreateDate   time.Time  `json:"create_date"`
	Subject      string     `json:"subject"`
	DocTypeID    uuid.UUID  `json:"doc_type_id"`
	StateID      uuid.UUID  `json:"state_id"`
	CreatorID    uuid.UUID  `json:"creator_id"`
	SignerID     *uuid.UUID `json:"signer_id,omitempty"`
	ContragentID *uuid.UUID `json:"contragent_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToDocOutResponse converts a domain document to a response
func ToDocOutResponse(d *docflow.DocOut) DocOutResponse {
	return DocOutResponse{
		ID:           d.ID,
		RegNumber:    d.RegNumber,
		CreateDate:   d.CreateDate,
		Subject:      d.Subject,
		DocTypeID:    d.DocTypeID,
		StateID:      d.StateID,
		CreatorID:    d.CreatorID,
		SignerID:     d.SignerID,
		ContragentID: d.ContragentID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// StateResponse is one row of the state lookup table.
type StateResponse struct {
	ID          uuid.UUID `json:"id"`
	BusinessKey string    `json:"business_key"`
	Name        string    `json:"name"`
}

// ToStateResponse converts a domain state to a response
func ToStateResponse(s *docflow.State) StateResponse {
	return StateResponse{
		ID:          s.ID,
		BusinessKey: string(s.BusinessKey),
		Name:        s.Name,
	}
}

// DocTypeResponse is one row of the document type lookup table.
type DocTypeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToDocTypeResponse converts a domain document type to a response
func ToDocTypeResponse(dt *docflow.DocType) DocTypeResponse {
	return DocTypeResponse{
		ID:   dt.ID,
		Name: dt.Name,
	}
}
