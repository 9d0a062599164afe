package contragent

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

// PersonService handles the person registry operations
type PersonService struct {
	personRepo     contragent.PersonRepository
	addressRepo    contragent.AddressRepository
	contragentRepo contragent.ContragentRepository
	scope          TransactionScope
}

// NewPersonService creates a new PersonService
func NewPersonService(
	personRepo contragent.PersonRepository,
	addressRepo contragent.AddressRepository,
	contragentRepo contragent.ContragentRepository,
	scope TransactionScope,
) *PersonService {
	return &PersonService{
		personRepo:     personRepo,
		addressRepo:    addressRepo,
		contragentRepo: contragentRepo,
		scope:          scope,
	}
}

// FindAll lists persons matching the supplied name fields. Last name is
// required. Only persons with at least one active plain-person link (no
// organization) are returned; employees of a company do not show up here.
func (s *PersonService) FindAll(ctx context.Context, query contragent.PersonQuery) ([]PersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	persons, err := s.personRepo.FindByConditions(ctx, query.Conditions())
	if err != nil {
		return nil, err
	}

	responses := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		has, err := s.contragentRepo.HasActivePlainPersonLink(ctx, persons[i].ID)
		if err != nil {
			return nil, err
		}
		if has {
			responses = append(responses, ToPersonResponse(&persons[i]))
		}
	}
	return responses, nil
}

// Update renames a person. The old FIO concatenation is replaced by the
// new one inside every linked contragent's search name; links whose search
// name does not contain the old FIO keep it unchanged. The rename and the
// link rewrites commit or roll back as one transaction.
func (s *PersonService) Update(ctx context.Context, req UpdatePersonRequest) (*PersonResponse, error) {
	if req.ID == uuid.Nil {
		return nil, shared.ErrNotFoundID
	}

	var person *contragent.Person
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Persons().FindByID(ctx, req.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFoundPerson
			}
			return err
		}

		oldFIO, newFIO := found.Rename(req.FirstName, req.MiddleName, req.LastName)
		if err := repos.Persons().Save(ctx, found); err != nil {
			return err
		}

		links, err := repos.Contragents().FindByPersonID(ctx, found.ID)
		if err != nil {
			return err
		}
		for i := range links {
			links[i].ReplaceSearchName(oldFIO, newFIO)
			if err := repos.Contragents().Save(ctx, &links[i]); err != nil {
				return err
			}
		}
		person = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToPersonResponse(person)
	return &response, nil
}

// Delete soft-deletes every link of the person. The person row stays.
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Persons().FindByID(ctx, id); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFoundPerson
			}
			return err
		}

		links, err := repos.Contragents().FindByPersonID(ctx, id)
		if err != nil {
			return err
		}
		for i := range links {
			if links[i].IsDeleted {
				continue
			}
			links[i].MarkDeleted()
			if err := repos.Contragents().Save(ctx, &links[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAddresses returns the address of every active link of the person.
// Each returned address carries the owning link's id, not the address row
// id, so callers delete the link rather than the shared address.
func (s *PersonService) GetAddresses(ctx context.Context, id uuid.UUID) ([]AddressResponse, error) {
	if _, err := s.personRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFoundPerson
		}
		return nil, err
	}

	links, err := s.contragentRepo.FindActiveByPersonID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, 0, len(links))
	for i := range links {
		if links[i].AddressID == nil {
			continue
		}
		address, err := s.addressRepo.FindByID(ctx, *links[i].AddressID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		resp := ToAddressResponse(address)
		resp.ID = links[i].ID
		responses = append(responses, resp)
	}
	return responses, nil
}
