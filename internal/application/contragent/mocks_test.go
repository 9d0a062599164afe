package contragent

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/documentflow/backend/internal/domain/contragent"
)

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByConditions(ctx context.Context, conds []contragent.Condition) ([]contragent.Address, error) {
	args := m.Called(ctx, conds)
	return args.Get(0).([]contragent.Address), args.Error(1)
}

func (m *MockAddressRepository) FindOneByConditions(ctx context.Context, conds []contragent.Condition) (*contragent.Address, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Address), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, address *contragent.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPersonRepository is a mock implementation of PersonRepository
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByConditions(ctx context.Context, conds []contragent.Condition) ([]contragent.Person, error) {
	args := m.Called(ctx, conds)
	return args.Get(0).([]contragent.Person), args.Error(1)
}

func (m *MockPersonRepository) FindOneByConditions(ctx context.Context, conds []contragent.Condition) (*contragent.Person, error) {
	args := m.Called(ctx, conds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Person), args.Error(1)
}

func (m *MockPersonRepository) Save(ctx context.Context, person *contragent.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// MockOrganizationRepository is a mock implementation of OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SearchByName(ctx context.Context, name string) ([]contragent.Organization, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]contragent.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Save(ctx context.Context, organization *contragent.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

// MockContragentRepository is a mock implementation of ContragentRepository
type MockContragentRepository struct {
	mock.Mock
}

func (m *MockContragentRepository) FindByID(ctx context.Context, id uuid.UUID) (*contragent.Contragent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]contragent.Contragent, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) FindActiveByPersonID(ctx context.Context, personID uuid.UUID) ([]contragent.Contragent, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) FindByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]contragent.Contragent, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) FindActiveByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]contragent.Contragent, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) FindByAddressID(ctx context.Context, addressID uuid.UUID) ([]contragent.Contragent, error) {
	args := m.Called(ctx, addressID)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) SearchActive(ctx context.Context, text string) ([]contragent.Contragent, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]contragent.Contragent), args.Error(1)
}

func (m *MockContragentRepository) HasActivePlainPersonLink(ctx context.Context, personID uuid.UUID) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContragentRepository) Save(ctx context.Context, link *contragent.Contragent) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}
