package docflow

import (
	"context"

	"github.com/documentflow/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocInRepository defines persistence for incoming documents.
type DocInRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DocIn, error)

	// FindAll returns a page of incoming documents ordered by
	// registration date ascending
	FindAll(ctx context.Context, filter shared.Filter) ([]DocIn, int64, error)

	Save(ctx context.Context, doc *DocIn) error

	// Delete hard-deletes an incoming document
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocOutFilter carries the optional listing filters for outgoing documents.
type DocOutFilter struct {
	StateID   *uuid.UUID
	DocTypeID *uuid.UUID
	CreatorID *uuid.UUID
	SignerID  *uuid.UUID
}

// DocOutRepository defines persistence for outgoing documents.
type DocOutRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DocOut, error)

	// FindAll returns a page of outgoing documents ordered by creation
	// date descending, constrained by the present filter fields
	FindAll(ctx context.Context, filter shared.Filter, docFilter DocOutFilter) ([]DocOut, int64, error)

	Save(ctx context.Context, doc *DocOut) error
}

// StateRepository defines persistence for the state lookup table.
type StateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*State, error)
	FindByBusinessKey(ctx context.Context, key BusinessKey) (*State, error)
	FindAll(ctx context.Context) ([]State, error)
	Save(ctx context.Context, state *State) error
}

// DocTypeRepository defines persistence for document types.
type DocTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DocType, error)
	FindAll(ctx context.Context) ([]DocType, error)
	Save(ctx context.Context, docType *DocType) error
}

// RegNumberRepository hands out registration numbers from a per-kind,
// per-year sequence. NextNumber must be called inside the transaction
// that saves the document so numbers are not burned on rollback.
type RegNumberRepository interface {
	NextNumber(ctx context.Context, kind string, year int) (int64, error)
}
