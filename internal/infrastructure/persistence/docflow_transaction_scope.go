package persistence

import (
	"context"

	"gorm.io/gorm"

	appdocflow "github.com/documentflow/backend/internal/application/docflow"
	"github.com/documentflow/backend/internal/domain/docflow"
)

// GormDocflowTransactionScope implements the document TransactionScope using
// GORM transactions.
type GormDocflowTransactionScope struct {
	db *Database
}

// NewGormDocflowTransactionScope creates a new GormDocflowTransactionScope.
func NewGormDocflowTransactionScope(db *Database) *GormDocflowTransactionScope {
	return &GormDocflowTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormDocflowTransactionScope) Execute(ctx context.Context, fn func(repos appdocflow.TransactionalRepositories) error) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return fn(&docflowTxRepositories{tx: tx})
	})
}

// docflowTxRepositories provides the document repositories bound to one
// transaction.
type docflowTxRepositories struct {
	tx *gorm.DB
}

// DocsIn returns the incoming document repository scoped to the current transaction.
func (r *docflowTxRepositories) DocsIn() docflow.DocInRepository {
	return NewGormDocInRepository(r.tx)
}

// DocsOut returns the outgoing document repository scoped to the current transaction.
func (r *docflowTxRepositories) DocsOut() docflow.DocOutRepository {
	return NewGormDocOutRepository(r.tx)
}

// States returns the state lookup repository scoped to the current transaction.
func (r *docflowTxRepositories) States() docflow.StateRepository {
	return NewGormStateRepository(r.tx)
}

// RegNumbers returns the registration number repository scoped to the current transaction.
func (r *docflowTxRepositories) RegNumbers() docflow.RegNumberRepository {
	return NewGormRegNumberRepository(r.tx)
}

var _ appdocflow.TransactionScope = (*GormDocflowTransactionScope)(nil)
var _ appdocflow.TransactionalRepositories = (*docflowTxRepositories)(nil)
