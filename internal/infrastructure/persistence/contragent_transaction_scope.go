package persistence

import (
	"context"

	"gorm.io/gorm"

	appcontragent "github.com/documentflow/backend/internal/application/contragent"
	"github.com/documentflow/backend/internal/domain/contragent"
)

// GormContragentTransactionScope implements the counterparty TransactionScope
// using GORM transactions. It provides atomic execution of multiple
// repository operations.
type GormContragentTransactionScope struct {
	db *Database
}

// NewGormContragentTransactionScope creates a new GormContragentTransactionScope.
func NewGormContragentTransactionScope(db *Database) *GormContragentTransactionScope {
	return &GormContragentTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormContragentTransactionScope) Execute(ctx context.Context, fn func(repos appcontragent.TransactionalRepositories) error) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return fn(&contragentTxRepositories{tx: tx})
	})
}

// contragentTxRepositories provides the counterparty repositories bound to
// one transaction.
type contragentTxRepositories struct {
	tx *gorm.DB
}

// Addresses returns the address repository scoped to the current transaction.
func (r *contragentTxRepositories) Addresses() contragent.AddressRepository {
	return NewGormAddressRepository(r.tx)
}

// Persons returns the person repository scoped to the current transaction.
func (r *contragentTxRepositories) Persons() contragent.PersonRepository {
	return NewGormPersonRepository(r.tx)
}

// Organizations returns the organization repository scoped to the current transaction.
func (r *contragentTxRepositories) Organizations() contragent.OrganizationRepository {
	return NewGormOrganizationRepository(r.tx)
}

// Contragents returns the link repository scoped to the current transaction.
func (r *contragentTxRepositories) Contragents() contragent.ContragentRepository {
	return NewGormContragentRepository(r.tx)
}

var _ appcontragent.TransactionScope = (*GormContragentTransactionScope)(nil)
var _ appcontragent.TransactionalRepositories = (*contragentTxRepositories)(nil)
