package contragent

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

func newContragentServiceWithMocks() (*ContragentService, *MockAddressRepository, *MockPersonRepository, *MockOrganizationRepository, *MockContragentRepository) {
	addressRepo := new(MockAddressRepository)
	personRepo := new(MockPersonRepository)
	organizationRepo := new(MockOrganizationRepository)
	contragentRepo := new(MockContragentRepository)
	scope := NewNoOpTransactionScope(addressRepo, personRepo, organizationRepo, contragentRepo)
	svc := NewContragentService(addressRepo, personRepo, organizationRepo, contragentRepo, scope)
	return svc, addressRepo, personRepo, organizationRepo, contragentRepo
}

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	assert.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestContragentService_Save_NoIdentity(t *testing.T) {
	svc, addressRepo, personRepo, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	err := svc.Save(context.Background(), SaveContragentRequest{
		Type:      "person",
		Addresses: []AddressRequest{{City: "Moscow"}},
	})

	assertDomainCode(t, err, "INVALID_ARGUMENT")
	addressRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	personRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	organizationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	contragentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContragentService_Save_NewPersonWithAddress(t *testing.T) {
	svc, addressRepo, personRepo, _, contragentRepo := newContragentServiceWithMocks()

	personRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	personRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Person")).Return(nil)
	addressRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	addressRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Address")).Return(nil)
	contragentRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Contragent")).Return(nil)

	err := svc.Save(context.Background(), SaveContragentRequest{
		Type:       "person",
		FirstName:  "Ivan",
		MiddleName: "Ivanovich",
		LastName:   "Ivanov",
		Addresses:  []AddressRequest{{City: "Moscow", Street: "Tverskaya", HouseNumber: "1"}},
	})

	assert.NoError(t, err)
	personRepo.AssertNumberOfCalls(t, "Save", 1)
	addressRepo.AssertNumberOfCalls(t, "Save", 1)
	contragentRepo.AssertNumberOfCalls(t, "Save", 1)

	link := contragentRepo.Calls[0].Arguments.Get(1).(*contragent.Contragent)
	assert.Equal(t, "IVANIVANOVICHIVANOV", link.SearchName)
	assert.NotNil(t, link.PersonID)
	assert.NotNil(t, link.AddressID)
	assert.Nil(t, link.OrganizationID)
}

func TestContragentService_Save_DedupsExistingPersonAndAddress(t *testing.T) {
	svc, addressRepo, personRepo, _, contragentRepo := newContragentServiceWithMocks()

	existingPerson := contragent.NewPerson("Ivan", "Ivanovich", "Ivanov")
	existingAddress := contragent.NewAddress("101000", "Russia", "Moscow", "Tverskaya", "1", "")

	personRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(existingPerson, nil)
	addressRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(existingAddress, nil)
	contragentRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Contragent")).Return(nil)

	err := svc.Save(context.Background(), SaveContragentRequest{
		Type:      "person",
		FirstName: "Ivan", MiddleName: "Ivanovich", LastName: "Ivanov",
		Addresses: []AddressRequest{{PostalIndex: "101000", Country: "Russia", City: "Moscow", Street: "Tverskaya", HouseNumber: "1"}},
	})

	assert.NoError(t, err)
	personRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	addressRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

	link := contragentRepo.Calls[0].Arguments.Get(1).(*contragent.Contragent)
	assert.Equal(t, existingPerson.ID, *link.PersonID)
	assert.Equal(t, existingAddress.ID, *link.AddressID)
}

func TestContragentService_Save_PersonWithoutAddresses(t *testing.T) {
	svc, _, personRepo, _, contragentRepo := newContragentServiceWithMocks()

	personRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	personRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	contragentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err := svc.Save(context.Background(), SaveContragentRequest{
		Type:      "person",
		FirstName: "Petr", LastName: "Petrov",
	})

	assert.NoError(t, err)
	link := contragentRepo.Calls[0].Arguments.Get(1).(*contragent.Contragent)
	assert.Nil(t, link.AddressID)
	assert.Equal(t, "PETRPETROV", link.SearchName)
}

func TestContragentService_Save_CompanyWithEmployees(t *testing.T) {
	svc, addressRepo, personRepo, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	organizationRepo.On("SearchByName", mock.Anything, "ACME LLC").Return([]contragent.Organization{}, nil)
	organizationRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Organization")).Return(nil)
	addressRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	addressRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	personRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	personRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	contragentRepo.On("Save", mock.Anything, mock.AnythingOfType("*contragent.Contragent")).Return(nil)

	err := svc.Save(context.Background(), SaveContragentRequest{
		Type:        "company",
		CompanyName: "Acme LLC",
		Addresses:   []AddressRequest{{City: "Moscow", Street: "Arbat", HouseNumber: "10"}},
		Employees: []EmployeeRequest{
			{FirstName: "Ivan", LastName: "Ivanov", Position: "Director"},
			{},
		},
	})

	assert.NoError(t, err)
	// one org+address link, one employee link; the empty employee is skipped
	contragentRepo.AssertNumberOfCalls(t, "Save", 2)

	orgLink := contragentRepo.Calls[0].Arguments.Get(1).(*contragent.Contragent)
	assert.Equal(t, "ACME LLC", orgLink.SearchName)
	assert.Nil(t, orgLink.PersonID)

	empLink := contragentRepo.Calls[1].Arguments.Get(1).(*contragent.Contragent)
	assert.True(t, empLink.IsEmployee())
	assert.Equal(t, "IVANIVANOVDIRECTOR", empLink.SearchName)
	assert.Equal(t, "DIRECTOR", empLink.PersonPosition)
	assert.Nil(t, empLink.AddressID)
}

func TestContragentService_BindAddressWithPerson_PersonMissing(t *testing.T) {
	svc, _, personRepo, _, _ := newContragentServiceWithMocks()

	personRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	_, err := svc.BindAddressWithPerson(context.Background(), uuid.New(), AddressRequest{City: "Moscow"})
	assertDomainCode(t, err, "NOT_FOUND_PERSON")
}

func TestContragentService_BindAddressWithOrganization(t *testing.T) {
	svc, addressRepo, _, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	organization := contragent.NewOrganization("Acme LLC")
	existingAddress := contragent.NewAddress("", "", "Moscow", "Arbat", "10", "")

	organizationRepo.On("FindByID", mock.Anything, organization.ID).Return(organization, nil)
	addressRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(existingAddress, nil)
	addressRepo.On("FindByID", mock.Anything, existingAddress.ID).Return(existingAddress, nil)
	contragentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.BindAddressWithOrganization(context.Background(), organization.ID, AddressRequest{City: "Moscow", Street: "Arbat", HouseNumber: "10"})

	assert.NoError(t, err)
	assert.Equal(t, "ACME LLC", resp.SearchName)
	assert.NotNil(t, resp.Organization)
	assert.NotNil(t, resp.Address)
	addressRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContragentService_BindEmployeeWithAddress(t *testing.T) {
	svc, addressRepo, personRepo, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	organization := contragent.NewOrganization("Acme LLC")
	person := contragent.NewPerson("Ivan", "", "Ivanov")
	address := contragent.NewAddress("", "", "Moscow", "Arbat", "10", "")

	organizationRepo.On("FindByID", mock.Anything, organization.ID).Return(organization, nil)
	addressRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(address, nil)
	addressRepo.On("FindByID", mock.Anything, address.ID).Return(address, nil)
	personRepo.On("FindOneByConditions", mock.Anything, mock.Anything).Return(person, nil)
	personRepo.On("FindByID", mock.Anything, person.ID).Return(person, nil)
	contragentRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.BindEmployeeWithAddress(context.Background(), BindEmployeeWithAddressRequest{
		OrganizationID: organization.ID,
		Employee:       EmployeeRequest{FirstName: "Ivan", LastName: "Ivanov", Position: "Manager"},
		Address:        AddressRequest{City: "Moscow", Street: "Arbat", HouseNumber: "10"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "MANAGER", resp.Position)
	assert.NotNil(t, resp.Person)
	assert.NotNil(t, resp.Organization)
	assert.NotNil(t, resp.Address)

	link := contragentRepo.Calls[0].Arguments.Get(1).(*contragent.Contragent)
	assert.True(t, link.IsEmployee())
	assert.Equal(t, address.ID, *link.AddressID)
}

func TestContragentService_UpdateEmployee_Validation(t *testing.T) {
	svc, _, _, _, _ := newContragentServiceWithMocks()

	_, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeRequest{LastName: "Ivanov"})
	assertDomainCode(t, err, "INVALID_ARGUMENT")

	id := uuid.New()
	_, err = svc.UpdateEmployee(context.Background(), UpdateEmployeeRequest{ID: &id, LastName: "   "})
	assertDomainCode(t, err, "INVALID_ARGUMENT")
}

func TestContragentService_UpdateEmployee_RebuildsSearchName(t *testing.T) {
	svc, _, personRepo, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	person := contragent.NewPerson("Ivan", "Ivanovich", "Ivanov")
	organization := contragent.NewOrganization("Acme LLC")
	link := contragent.NewEmployeeLink(person.ID, organization.ID, nil, "DIRECTOR", "IVANIVANOVICHIVANOVDIRECTOR")

	contragentRepo.On("FindByID", mock.Anything, link.ID).Return(link, nil)
	personRepo.On("FindByID", mock.Anything, person.ID).Return(person, nil)
	personRepo.On("Save", mock.Anything, person).Return(nil)
	organizationRepo.On("FindByID", mock.Anything, organization.ID).Return(organization, nil)
	contragentRepo.On("Save", mock.Anything, link).Return(nil)

	resp, err := svc.UpdateEmployee(context.Background(), UpdateEmployeeRequest{
		ID:        &link.ID,
		FirstName: "Petr", MiddleName: "Ivanovich", LastName: "Ivanov",
		Position: "Manager",
	})

	assert.NoError(t, err)
	assert.Equal(t, "PETRIVANOVICHIVANOVMANAGER", resp.SearchName)
	assert.Equal(t, "MANAGER", resp.Position)
	assert.Equal(t, "PETR", person.FirstName)
	assert.NotContains(t, link.SearchName, "IVANIVANOVICHIVANOV")
}

func TestContragentService_Delete(t *testing.T) {
	svc, _, _, _, contragentRepo := newContragentServiceWithMocks()

	person := contragent.NewPerson("Ivan", "", "Ivanov")
	address := contragent.NewAddress("", "", "Moscow", "Arbat", "10", "")
	link := contragent.NewPersonLink(person.ID, address.ID, person.FullName())

	contragentRepo.On("FindByID", mock.Anything, link.ID).Return(link, nil)
	contragentRepo.On("Save", mock.Anything, link).Return(nil)

	err := svc.Delete(context.Background(), link.ID)

	assert.NoError(t, err)
	assert.True(t, link.IsDeleted)
}

func TestContragentService_Delete_NotFound(t *testing.T) {
	svc, _, _, _, contragentRepo := newContragentServiceWithMocks()

	contragentRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	err := svc.Delete(context.Background(), uuid.New())
	assertDomainCode(t, err, "NOT_FOUND_ID")
}

func TestContragentService_Search_ResolvesAggregates(t *testing.T) {
	svc, addressRepo, personRepo, _, contragentRepo := newContragentServiceWithMocks()

	person := contragent.NewPerson("Ivan", "", "Ivanov")
	address := contragent.NewAddress("", "", "Moscow", "Arbat", "10", "")
	link := contragent.NewPersonLink(person.ID, address.ID, person.FullName())

	contragentRepo.On("SearchActive", mock.Anything, "ivanov").Return([]contragent.Contragent{*link}, nil)
	personRepo.On("FindByID", mock.Anything, person.ID).Return(person, nil)
	addressRepo.On("FindByID", mock.Anything, address.ID).Return(address, nil)

	responses, err := svc.Search(context.Background(), "ivanov")

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, link.ID, responses[0].ID)
	assert.Equal(t, "IVANOV", responses[0].Person.LastName)
	assert.Equal(t, "MOSCOW", responses[0].Address.City)
	assert.Nil(t, responses[0].Organization)
}

func TestContragentService_SearchEmployees_RequiresLastName(t *testing.T) {
	svc, _, _, _, _ := newContragentServiceWithMocks()

	_, err := svc.SearchEmployees(context.Background(), "Ivan", "", "")
	assertDomainCode(t, err, "INVALID_ARGUMENT")
}

func TestContragentService_SearchEmployees_FiltersPlainLinks(t *testing.T) {
	svc, _, personRepo, organizationRepo, contragentRepo := newContragentServiceWithMocks()

	person := contragent.NewPerson("Ivan", "", "Ivanov")
	organization := contragent.NewOrganization("Acme LLC")
	plain := contragent.NewPersonLink(person.ID, uuid.New(), person.FullName())
	plain.AddressID = nil
	employee := contragent.NewEmployeeLink(person.ID, organization.ID, nil, "DIRECTOR", "IVANIVANOVDIRECTOR")

	contragentRepo.On("SearchActive", mock.Anything, "IVANIVANOV").Return([]contragent.Contragent{*plain, *employee}, nil)
	personRepo.On("FindByID", mock.Anything, person.ID).Return(person, nil)
	organizationRepo.On("FindByID", mock.Anything, organization.ID).Return(organization, nil)

	responses, err := svc.SearchEmployees(context.Background(), "Ivan", "", "Ivanov")

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, employee.ID, responses[0].ID)
}
