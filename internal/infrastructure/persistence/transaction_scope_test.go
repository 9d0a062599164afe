package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcontragent "github.com/documentflow/backend/internal/application/contragent"
	appdocflow "github.com/documentflow/backend/internal/application/docflow"
	"github.com/documentflow/backend/internal/domain/contragent"
)

func TestGormContragentTransactionScope_Execute(t *testing.T) {
	db := newTestDB(t)
	scope := NewGormContragentTransactionScope(&Database{DB: db})
	ctx := context.Background()

	t.Run("commits all writes on success", func(t *testing.T) {
		person := contragent.NewPerson("Иван", "Иванович", "Иванов")
		address := contragent.NewAddress("", "Russia", "Moscow", "Arbat", "1", "")

		err := scope.Execute(ctx, func(repos appcontragent.TransactionalRepositories) error {
			if err := repos.Persons().Save(ctx, person); err != nil {
				return err
			}
			if err := repos.Addresses().Save(ctx, address); err != nil {
				return err
			}
			link := contragent.NewPersonLink(person.ID, address.ID, person.FullName())
			return repos.Contragents().Save(ctx, link)
		})
		require.NoError(t, err)

		links, err := NewGormContragentRepository(db).FindByPersonID(ctx, person.ID)
		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("rolls back all writes on error", func(t *testing.T) {
		person := contragent.NewPerson("Пётр", "", "Петров")
		address := contragent.NewAddress("", "Russia", "Tver", "Lenina", "2", "")

		boom := errors.New("boom")
		err := scope.Execute(ctx, func(repos appcontragent.TransactionalRepositories) error {
			if err := repos.Persons().Save(ctx, person); err != nil {
				return err
			}
			if err := repos.Addresses().Save(ctx, address); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int64
		require.NoError(t, db.Table("persons").Where("id = ?", person.ID).Count(&count).Error)
		assert.Zero(t, count, "person row must not survive the rollback")
		require.NoError(t, db.Table("addresses").Where("id = ?", address.ID).Count(&count).Error)
		assert.Zero(t, count, "address row must not survive the rollback")
	})
}

// failingLinkScope wraps a real transaction scope and makes link saves fail
// after the first one, leaving the earlier writes of the same transaction
// in need of a rollback.
type failingLinkScope struct {
	inner appcontragent.TransactionScope
	saves int
}

func (s *failingLinkScope) Execute(ctx context.Context, fn func(repos appcontragent.TransactionalRepositories) error) error {
	return s.inner.Execute(ctx, func(repos appcontragent.TransactionalRepositories) error {
		return fn(&failingLinkRepositories{TransactionalRepositories: repos, scope: s})
	})
}

type failingLinkRepositories struct {
	appcontragent.TransactionalRepositories
	scope *failingLinkScope
}

func (r *failingLinkRepositories) Contragents() contragent.ContragentRepository {
	return &failingLinkRepository{
		ContragentRepository: r.TransactionalRepositories.Contragents(),
		scope:                r.scope,
	}
}

type failingLinkRepository struct {
	contragent.ContragentRepository
	scope *failingLinkScope
}

func (r *failingLinkRepository) Save(ctx context.Context, link *contragent.Contragent) error {
	if r.scope.saves >= 1 {
		return errors.New("link save failed")
	}
	r.scope.saves++
	return r.ContragentRepository.Save(ctx, link)
}

func TestPersonServiceUpdate_RollsBackPartialRename(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	personRepo := NewGormPersonRepository(db)
	addressRepo := NewGormAddressRepository(db)
	linkRepo := NewGormContragentRepository(db)

	person := contragent.NewPerson("Иван", "Иванович", "Иванов")
	require.NoError(t, personRepo.Save(ctx, person))
	address := contragent.NewAddress("", "Russia", "Moscow", "Arbat", "10", "")
	require.NoError(t, addressRepo.Save(ctx, address))

	first := contragent.NewPersonLink(person.ID, address.ID, person.FullName())
	second := contragent.NewPersonLink(person.ID, address.ID, person.FullName()+"DIRECTOR")
	require.NoError(t, linkRepo.Save(ctx, first))
	require.NoError(t, linkRepo.Save(ctx, second))

	scope := &failingLinkScope{inner: NewGormContragentTransactionScope(&Database{DB: db})}
	svc := appcontragent.NewPersonService(personRepo, addressRepo, linkRepo, scope)

	_, err := svc.Update(ctx, appcontragent.UpdatePersonRequest{
		ID:         person.ID,
		FirstName:  "Пётр",
		MiddleName: "Иванович",
		LastName:   "Иванов",
	})
	require.Error(t, err)

	// The rename and the first link's rewritten search name must have been
	// rolled back together with the failed second save.
	kept, err := personRepo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, person.FirstName, kept.FirstName)

	links, err := linkRepo.FindByPersonID(ctx, person.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	names := []string{links[0].SearchName, links[1].SearchName}
	assert.ElementsMatch(t, []string{person.FullName(), person.FullName() + "DIRECTOR"}, names)
}

func TestGormDocflowTransactionScope_RollbackReturnsNumber(t *testing.T) {
	db := newTestDB(t)
	scope := NewGormDocflowTransactionScope(&Database{DB: db})
	ctx := context.Background()

	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appdocflow.TransactionalRepositories) error {
		n, err := repos.RegNumbers().NextNumber(ctx, "IN", 2026)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The increment was rolled back, so the next registration gets the
	// same number instead of leaving a gap.
	n, err := NewGormRegNumberRepository(db).NextNumber(ctx, "IN", 2026)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
