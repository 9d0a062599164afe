package contragent

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

// ContragentService orchestrates creation, search and soft-delete across
// the three registries and the link records. Every mutating operation runs
// inside the transaction scope; all its writes commit or roll back together.
type ContragentService struct {
	addressRepo      contragent.AddressRepository
	personRepo       contragent.PersonRepository
	organizationRepo contragent.OrganizationRepository
	contragentRepo   contragent.ContragentRepository
	scope            TransactionScope
}

// NewContragentService creates a new ContragentService
func NewContragentService(
	addressRepo contragent.AddressRepository,
	personRepo contragent.PersonRepository,
	organizationRepo contragent.OrganizationRepository,
	contragentRepo contragent.ContragentRepository,
	scope TransactionScope,
) *ContragentService {
	return &ContragentService{
		addressRepo:      addressRepo,
		personRepo:       personRepo,
		organizationRepo: organizationRepo,
		contragentRepo:   contragentRepo,
		scope:            scope,
	}
}

// Search finds active links whose search name contains the text,
// returning each link together with the person, organization and address
// it references.
func (s *ContragentService) Search(ctx context.Context, text string) ([]ContragentResponse, error) {
	links, err := s.contragentRepo.SearchActive(ctx, text)
	if err != nil {
		return nil, err
	}

	responses := make([]ContragentResponse, 0, len(links))
	for i := range links {
		resp, err := s.toAggregate(ctx, &links[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetByID retrieves one link aggregate by id, soft-deleted rows included
func (s *ContragentService) GetByID(ctx context.Context, id uuid.UUID) (*ContragentResponse, error) {
	link, err := s.contragentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// Save is the top-level creation entry point for a new counterparty.
// A person request creates the person and one link per supplied address;
// a company request additionally creates the organization and one employee
// link per non-empty employee entry.
func (s *ContragentService) Save(ctx context.Context, req SaveContragentRequest) error {
	hasPersonName := strings.TrimSpace(req.FirstName) != "" ||
		strings.TrimSpace(req.MiddleName) != "" ||
		strings.TrimSpace(req.LastName) != ""
	hasCompanyName := strings.TrimSpace(req.CompanyName) != ""

	if !hasPersonName && !hasCompanyName {
		return shared.NewInvalidArgument("Contragent has no identifying fields")
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if req.Type == "company" || hasCompanyName {
			return s.saveCompany(ctx, repos, req)
		}
		return s.savePerson(ctx, repos, req)
	})
}

func (s *ContragentService) savePerson(ctx context.Context, repos TransactionalRepositories, req SaveContragentRequest) error {
	person, err := s.findOrCreatePerson(ctx, repos, req.FirstName, req.MiddleName, req.LastName)
	if err != nil {
		return err
	}
	searchName := person.FullName()

	if len(req.Addresses) == 0 {
		link := &contragent.Contragent{
			BaseEntity: shared.NewBaseEntity(),
			PersonID:   &person.ID,
			SearchName: searchName,
		}
		return repos.Contragents().Save(ctx, link)
	}

	for _, addrReq := range req.Addresses {
		if addrReq.IsEmpty() {
			continue
		}
		address, err := s.findOrCreateAddress(ctx, repos, addrReq)
		if err != nil {
			return err
		}
		link := contragent.NewPersonLink(person.ID, address.ID, searchName)
		if err := repos.Contragents().Save(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContragentService) saveCompany(ctx context.Context, repos TransactionalRepositories, req SaveContragentRequest) error {
	organization, err := s.findOrCreateOrganization(ctx, repos, req.CompanyName)
	if err != nil {
		return err
	}

	for _, addrReq := range req.Addresses {
		if addrReq.IsEmpty() {
			continue
		}
		address, err := s.findOrCreateAddress(ctx, repos, addrReq)
		if err != nil {
			return err
		}
		link := contragent.NewOrganizationLink(organization.ID, address.ID, organization.Name)
		if err := repos.Contragents().Save(ctx, link); err != nil {
			return err
		}
	}

	for _, empReq := range req.Employees {
		if empReq.IsEmpty() {
			continue
		}
		if _, err := s.bindEmployeeLink(ctx, repos, organization.ID, empReq, nil); err != nil {
			return err
		}
	}
	return nil
}

// BindAddressWithPerson creates a link binding an existing person to a
// deduped address.
func (s *ContragentService) BindAddressWithPerson(ctx context.Context, personID uuid.UUID, addrReq AddressRequest) (*ContragentResponse, error) {
	var link *contragent.Contragent
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		person, err := repos.Persons().FindByID(ctx, personID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFoundPerson
			}
			return err
		}

		address, err := s.findOrCreateAddress(ctx, repos, addrReq)
		if err != nil {
			return err
		}

		link = contragent.NewPersonLink(person.ID, address.ID, person.FullName())
		return repos.Contragents().Save(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// BindAddressWithOrganization creates a link binding an existing
// organization to a deduped address.
func (s *ContragentService) BindAddressWithOrganization(ctx context.Context, organizationID uuid.UUID, addrReq AddressRequest) (*ContragentResponse, error) {
	var link *contragent.Contragent
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		organization, err := repos.Organizations().FindByID(ctx, organizationID)
		if err != nil {
			return shared.ErrNotFoundID
		}

		address, err := s.findOrCreateAddress(ctx, repos, addrReq)
		if err != nil {
			return err
		}

		link = contragent.NewOrganizationLink(organization.ID, address.ID, organization.Name)
		return repos.Contragents().Save(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// BindEmployeeWithOrganization creates a person and an employee link for
// a company, without an address.
func (s *ContragentService) BindEmployeeWithOrganization(ctx context.Context, organizationID uuid.UUID, empReq EmployeeRequest) (*ContragentResponse, error) {
	if empReq.IsEmpty() {
		return nil, shared.NewInvalidArgument("Employee has no name")
	}

	var link *contragent.Contragent
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Organizations().FindByID(ctx, organizationID); err != nil {
			return shared.ErrNotFoundID
		}

		created, err := s.bindEmployeeLink(ctx, repos, organizationID, empReq, nil)
		if err != nil {
			return err
		}
		link = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// BindEmployeeWithAddress is the two-phase bind: the address and the
// person are resolved or created, then linked to the organization.
func (s *ContragentService) BindEmployeeWithAddress(ctx context.Context, req BindEmployeeWithAddressRequest) (*ContragentResponse, error) {
	if req.Employee.IsEmpty() {
		return nil, shared.NewInvalidArgument("Employee has no name")
	}

	var link *contragent.Contragent
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Organizations().FindByID(ctx, req.OrganizationID); err != nil {
			return shared.ErrNotFoundID
		}

		address, err := s.findOrCreateAddress(ctx, repos, req.Address)
		if err != nil {
			return err
		}

		created, err := s.bindEmployeeLink(ctx, repos, req.OrganizationID, req.Employee, &address.ID)
		if err != nil {
			return err
		}
		link = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// UpdateEmployee updates the person behind an employee link and the
// link's position, rebuilding the search name from scratch.
func (s *ContragentService) UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (*ContragentResponse, error) {
	if req.ID == nil || *req.ID == uuid.Nil {
		return nil, shared.NewInvalidArgument("Employee id is empty")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, shared.NewInvalidArgument("Last name is empty")
	}

	var link *contragent.Contragent
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Contragents().FindByID(ctx, *req.ID)
		if err != nil {
			return shared.ErrNotFoundID
		}
		if found.PersonID == nil {
			return shared.NewInvalidArgument("Link has no person")
		}

		person, err := repos.Persons().FindByID(ctx, *found.PersonID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFoundPerson
			}
			return err
		}

		person.Rename(req.FirstName, req.MiddleName, req.LastName)
		if err := repos.Persons().Save(ctx, person); err != nil {
			return err
		}

		found.PersonPosition = contragent.Normalize(req.Position)
		found.SearchName = contragent.SearchName(req.FirstName, req.MiddleName, req.LastName, req.Position)
		found.Touch()
		if err := repos.Contragents().Save(ctx, found); err != nil {
			return err
		}
		link = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toAggregate(ctx, link)
}

// Delete soft-deletes one link. The person, organization and address it
// references stay, they may be shared by other active links.
func (s *ContragentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		link, err := repos.Contragents().FindByID(ctx, id)
		if err != nil {
			return shared.ErrNotFoundID
		}
		link.MarkDeleted()
		return repos.Contragents().Save(ctx, link)
	})
}

// SearchEmployees finds employee links by name fields and position.
// The search string is built the same way employee search names are
// stored, so the two sides always agree.
func (s *ContragentService) SearchEmployees(ctx context.Context, firstName, middleName, lastName string) ([]ContragentResponse, error) {
	if strings.TrimSpace(lastName) == "" {
		return nil, shared.NewInvalidArgument("Last name is empty")
	}

	links, err := s.contragentRepo.SearchActive(ctx, contragent.SearchName(firstName, middleName, lastName))
	if err != nil {
		return nil, err
	}

	responses := make([]ContragentResponse, 0, len(links))
	for i := range links {
		if !links[i].IsEmployee() {
			continue
		}
		resp, err := s.toAggregate(ctx, &links[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// =============================================================================
// helpers
// =============================================================================

func (s *ContragentService) bindEmployeeLink(ctx context.Context, repos TransactionalRepositories, organizationID uuid.UUID, empReq EmployeeRequest, addressID *uuid.UUID) (*contragent.Contragent, error) {
	person, err := s.findOrCreatePerson(ctx, repos, empReq.FirstName, empReq.MiddleName, empReq.LastName)
	if err != nil {
		return nil, err
	}

	position := contragent.Normalize(empReq.Position)
	searchName := contragent.SearchName(empReq.FirstName, empReq.MiddleName, empReq.LastName, empReq.Position)

	link := contragent.NewEmployeeLink(person.ID, organizationID, addressID, position, searchName)
	if err := repos.Contragents().Save(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// findOrCreateAddress dedups by exact normalized field match before
// creating a new row. The find-then-create window is not guarded; two
// concurrent callers may both insert, matching the historical behavior.
func (s *ContragentService) findOrCreateAddress(ctx context.Context, repos TransactionalRepositories, req AddressRequest) (*contragent.Address, error) {
	candidate := contragent.NewAddress(req.PostalIndex, req.Country, req.City, req.Street, req.HouseNumber, req.ApartmentNumber)

	existing, err := repos.Addresses().FindOneByConditions(ctx, candidate.StrongFindConditions())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := repos.Addresses().Save(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *ContragentService) findOrCreatePerson(ctx context.Context, repos TransactionalRepositories, firstName, middleName, lastName string) (*contragent.Person, error) {
	candidate := contragent.NewPerson(firstName, middleName, lastName)

	existing, err := repos.Persons().FindOneByConditions(ctx, candidate.StrongFindConditions())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := repos.Persons().Save(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *ContragentService) findOrCreateOrganization(ctx context.Context, repos TransactionalRepositories, name string) (*contragent.Organization, error) {
	normalized := contragent.Normalize(name)

	matches, err := repos.Organizations().SearchByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].Name == normalized {
			return &matches[i], nil
		}
	}

	organization := contragent.NewOrganization(name)
	if err := repos.Organizations().Save(ctx, organization); err != nil {
		return nil, err
	}
	return organization, nil
}

// toAggregate resolves the person, organization and address of a link
func (s *ContragentService) toAggregate(ctx context.Context, link *contragent.Contragent) (*ContragentResponse, error) {
	resp := &ContragentResponse{
		ID:         link.ID,
		SearchName: link.SearchName,
		Position:   link.PersonPosition,
		IsDeleted:  link.IsDeleted,
		CreatedAt:  link.CreatedAt,
		UpdatedAt:  link.UpdatedAt,
	}

	if link.PersonID != nil {
		person, err := s.personRepo.FindByID(ctx, *link.PersonID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if person != nil {
			pr := ToPersonResponse(person)
			resp.Person = &pr
		}
	}
	if link.OrganizationID != nil {
		organization, err := s.organizationRepo.FindByID(ctx, *link.OrganizationID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if organization != nil {
			or := ToOrganizationResponse(organization)
			resp.Organization = &or
		}
	}
	if link.AddressID != nil {
		address, err := s.addressRepo.FindByID(ctx, *link.AddressID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if address != nil {
			ar := ToAddressResponse(address)
			resp.Address = &ar
		}
	}
	return resp, nil
}
