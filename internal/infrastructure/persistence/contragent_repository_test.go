package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/backend/internal/domain/contragent"
)

func TestGormContragentRepository_SearchActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormContragentRepository(db)
	ctx := context.Background()

	personID := uuid.New()
	addressID := uuid.New()

	active := contragent.NewPersonLink(personID, addressID, "ИВАНИВАНОВИЧИВАНОВ")
	require.NoError(t, repo.Save(ctx, active))

	deleted := contragent.NewPersonLink(uuid.New(), addressID, "ИВАНОВДИРЕКТОР")
	deleted.MarkDeleted()
	require.NoError(t, repo.Save(ctx, deleted))

	t.Run("matches substring of search name", func(t *testing.T) {
		found, err := repo.SearchActive(ctx, "иванов")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, active.ID, found[0].ID)
	})

	t.Run("soft-deleted links are excluded", func(t *testing.T) {
		found, err := repo.SearchActive(ctx, "директор")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestGormContragentRepository_HasActivePlainPersonLink(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormContragentRepository(db)
	ctx := context.Background()

	plainPerson := uuid.New()
	employeeOnly := uuid.New()
	orgID := uuid.New()
	addressID := uuid.New()

	require.NoError(t, repo.Save(ctx, contragent.NewPersonLink(plainPerson, addressID, "ПЕТРОВ")))
	require.NoError(t, repo.Save(ctx, contragent.NewEmployeeLink(employeeOnly, orgID, &addressID, "ДИРЕКТОР", "СИДОРОВДИРЕКТОР")))

	t.Run("person with plain link", func(t *testing.T) {
		has, err := repo.HasActivePlainPersonLink(ctx, plainPerson)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("person with only employee links", func(t *testing.T) {
		has, err := repo.HasActivePlainPersonLink(ctx, employeeOnly)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("soft delete removes the plain link", func(t *testing.T) {
		links, err := repo.FindActiveByPersonID(ctx, plainPerson)
		require.NoError(t, err)
		require.Len(t, links, 1)

		links[0].MarkDeleted()
		require.NoError(t, repo.Save(ctx, &links[0]))

		has, err := repo.HasActivePlainPersonLink(ctx, plainPerson)
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestGormContragentRepository_FindByAddressID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormContragentRepository(db)
	ctx := context.Background()

	addressID := uuid.New()
	otherAddress := uuid.New()

	first := contragent.NewPersonLink(uuid.New(), addressID, "ИВАНОВ")
	second := contragent.NewOrganizationLink(uuid.New(), addressID, "РОГА И КОПЫТА")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, contragent.NewPersonLink(uuid.New(), otherAddress, "ПЕТРОВ")))

	found, err := repo.FindByAddressID(ctx, addressID)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	t.Run("disowned address drops out of the index", func(t *testing.T) {
		first.DisownAddress()
		require.NoError(t, repo.Save(ctx, first))

		found, err := repo.FindByAddressID(ctx, addressID)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

func TestGormContragentRepository_FindActiveByOrganizationID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormContragentRepository(db)
	ctx := context.Background()

	orgID := uuid.New()
	addressID := uuid.New()

	link := contragent.NewOrganizationLink(orgID, addressID, "ЗАВОД")
	require.NoError(t, repo.Save(ctx, link))

	gone := contragent.NewOrganizationLink(orgID, addressID, "ЗАВОД")
	gone.MarkDeleted()
	require.NoError(t, repo.Save(ctx, gone))

	active, err := repo.FindActiveByOrganizationID(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, link.ID, active[0].ID)

	all, err := repo.FindByOrganizationID(ctx, orgID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
