package docflow

import (
	"context"

	"github.com/documentflow/backend/internal/domain/docflow"
)

// TransactionScope provides transactional access to the document
// repositories. Registration number assignment and the document insert run in
// the same transaction so a failed save never consumes a number.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the document repositories
// within a transaction.
type TransactionalRepositories interface {
	// DocsIn returns the incoming document repository scoped to the current transaction
	DocsIn() docflow.DocInRepository
	// DocsOut returns the outgoing document repository scoped to the current transaction
	DocsOut() docflow.DocOutRepository
	// States returns the state lookup repository scoped to the current transaction
	States() docflow.StateRepository
	// RegNumbers returns the registration number repository scoped to the current transaction
	RegNumbers() docflow.RegNumberRepository
}

// NoOpTransactionScope is a transaction scope without real transactions,
// for tests running against mocked repositories.
type NoOpTransactionScope struct {
	docInRepo     docflow.DocInRepository
	docOutRepo    docflow.DocOutRepository
	stateRepo     docflow.StateRepository
	regNumberRepo docflow.RegNumberRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	docInRepo docflow.DocInRepository,
	docOutRepo docflow.DocOutRepository,
	stateRepo docflow.StateRepository,
	regNumberRepo docflow.RegNumberRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		docInRepo:     docInRepo,
		docOutRepo:    docOutRepo,
		stateRepo:     stateRepo,
		regNumberRepo: regNumberRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// DocsIn returns the incoming document repository.
func (s *NoOpTransactionScope) DocsIn() docflow.DocInRepository {
	return s.docInRepo
}

// DocsOut returns the outgoing document repository.
func (s *NoOpTransactionScope) DocsOut() docflow.DocOutRepository {
	return s.docOutRepo
}

// States returns the state lookup repository.
func (s *NoOpTransactionScope) States() docflow.StateRepository {
	return s.stateRepo
}

// RegNumbers returns the registration number repository.
func (s *NoOpTransactionScope) RegNumbers() docflow.RegNumberRepository {
	return s.regNumberRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
