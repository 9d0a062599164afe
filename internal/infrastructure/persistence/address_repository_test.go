package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

func TestGormAddressRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	addr := contragent.NewAddress("123456", "Россия", "Москва", "Тверская", "10", "5")
	require.NoError(t, repo.Save(ctx, addr))

	t.Run("finds existing address", func(t *testing.T) {
		found, err := repo.FindByID(ctx, addr.ID)
		require.NoError(t, err)
		assert.Equal(t, "РОССИЯ", found.Country)
		assert.Equal(t, "МОСКВА", found.City)
		assert.Equal(t, "10", found.HouseNumber)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormAddressRepository_FindOneByConditions(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	withApartment := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "2")
	withoutApartment := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "")
	require.NoError(t, repo.Save(ctx, withApartment))
	require.NoError(t, repo.Save(ctx, withoutApartment))

	t.Run("exact match distinguishes blank optional field", func(t *testing.T) {
		probe := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "")
		found, err := repo.FindOneByConditions(ctx, probe.StrongFindConditions())
		require.NoError(t, err)
		assert.Equal(t, withoutApartment.ID, found.ID)
	})

	t.Run("present field must match stored value", func(t *testing.T) {
		probe := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "2")
		found, err := repo.FindOneByConditions(ctx, probe.StrongFindConditions())
		require.NoError(t, err)
		assert.Equal(t, withApartment.ID, found.ID)
	})

	t.Run("no match returns not found", func(t *testing.T) {
		probe := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "99")
		_, err := repo.FindOneByConditions(ctx, probe.StrongFindConditions())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormAddressRepository_FindByConditions(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "")))
	require.NoError(t, repo.Save(ctx, contragent.NewAddress("", "Россия", "Москва", "Арбат", "3", "")))
	require.NoError(t, repo.Save(ctx, contragent.NewAddress("", "Россия", "Тверь", "Советская", "3", "")))

	q := contragent.AddressQuery{Country: "россия", City: "москва", Street: "арбат"}
	require.NoError(t, q.Validate())

	found, err := repo.FindByConditions(ctx, q.Conditions())
	require.NoError(t, err)
	assert.Len(t, found, 2)

	t.Run("optional field narrows the listing", func(t *testing.T) {
		q := contragent.AddressQuery{Country: "россия", City: "москва", Street: "арбат", HouseNumber: "3"}
		found, err := repo.FindByConditions(ctx, q.Conditions())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "3", found[0].HouseNumber)
	})
}

func TestGormAddressRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	addr := contragent.NewAddress("", "Россия", "Москва", "Арбат", "1", "")
	require.NoError(t, repo.Save(ctx, addr))

	require.NoError(t, repo.Delete(ctx, addr.ID))

	_, err := repo.FindByID(ctx, addr.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	t.Run("deleting again returns not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, addr.ID), shared.ErrNotFound)
	})
}
