package contragent

import (
	"context"

	"github.com/documentflow/backend/internal/domain/contragent"
)

// TransactionScope provides transactional access to the counterparty
// repositories. When a function is executed within a transaction scope, all
// repository operations are part of the same database transaction and are
// committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the counterparty repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Addresses returns the address repository scoped to the current transaction
	Addresses() contragent.AddressRepository
	// Persons returns the person repository scoped to the current transaction
	Persons() contragent.PersonRepository
	// Organizations returns the organization repository scoped to the current transaction
	Organizations() contragent.OrganizationRepository
	// Contragents returns the link repository scoped to the current transaction
	Contragents() contragent.ContragentRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests running against mocked repositories.
type NoOpTransactionScope struct {
	addressRepo      contragent.AddressRepository
	personRepo       contragent.PersonRepository
	organizationRepo contragent.OrganizationRepository
	contragentRepo   contragent.ContragentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	addressRepo contragent.AddressRepository,
	personRepo contragent.PersonRepository,
	organizationRepo contragent.OrganizationRepository,
	contragentRepo contragent.ContragentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		addressRepo:      addressRepo,
		personRepo:       personRepo,
		organizationRepo: organizationRepo,
		contragentRepo:   contragentRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Addresses returns the address repository.
func (s *NoOpTransactionScope) Addresses() contragent.AddressRepository {
	return s.addressRepo
}

// Persons returns the person repository.
func (s *NoOpTransactionScope) Persons() contragent.PersonRepository {
	return s.personRepo
}

// Organizations returns the organization repository.
func (s *NoOpTransactionScope) Organizations() contragent.OrganizationRepository {
	return s.organizationRepo
}

// Contragents returns the link repository.
func (s *NoOpTransactionScope) Contragents() contragent.ContragentRepository {
	return s.contragentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
