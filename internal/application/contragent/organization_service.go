package contragent

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

// OrganizationService handles the organization registry operations
type OrganizationService struct {
	organizationRepo contragent.OrganizationRepository
	personRepo       contragent.PersonRepository
	addressRepo      contragent.AddressRepository
	contragentRepo   contragent.ContragentRepository
	scope            TransactionScope
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(
	organizationRepo contragent.OrganizationRepository,
	personRepo contragent.PersonRepository,
	addressRepo contragent.AddressRepository,
	contragentRepo contragent.ContragentRepository,
	scope TransactionScope,
) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		personRepo:       personRepo,
		addressRepo:      addressRepo,
		contragentRepo:   contragentRepo,
		scope:            scope,
	}
}

// FindAll lists organizations whose name contains the search text
func (s *OrganizationService) FindAll(ctx context.Context, query contragent.OrganizationQuery) ([]OrganizationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	organizations, err := s.organizationRepo.SearchByName(ctx, query.Name)
	if err != nil {
		return nil, err
	}

	responses := make([]OrganizationResponse, len(organizations))
	for i := range organizations {
		responses[i] = ToOrganizationResponse(&organizations[i])
	}
	return responses, nil
}

// GetAddresses returns the address of every active link of the
// organization, each carrying the owning link's id.
func (s *OrganizationService) GetAddresses(ctx context.Context, id uuid.UUID) ([]AddressResponse, error) {
	if _, err := s.organizationRepo.FindByID(ctx, id); err != nil {
		return nil, shared.ErrNotFoundID
	}

	links, err := s.contragentRepo.FindActiveByOrganizationID(ctx, id)
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

// GetEmployees returns every active employee link of the organization
func (s *OrganizationService) GetEmployees(ctx context.Context, id uuid.UUID) ([]EmployeeResponse, error) {
	if _, err := s.organizationRepo.FindByID(ctx, id); err != nil {
		return nil, shared.ErrNotFoundID
	}

	links, err := s.contragentRepo.FindActiveByOrganizationID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(links))
	for i := range links {
		if links[i].PersonID == nil {
			continue
		}
		person, err := s.personRepo.FindByID(ctx, *links[i].PersonID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		responses = append(responses, EmployeeResponse{
			ID:         links[i].ID,
			PersonID:   person.ID,
			FirstName:  person.FirstName,
			MiddleName: person.MiddleName,
			LastName:   person.LastName,
			Position:   links[i].PersonPosition,
		})
	}
	return responses, nil
}

// Update renames an organization and rewrites the old name inside every
// linked contragent's search name. The rename and the link rewrites commit
// or roll back as one transaction.
func (s *OrganizationService) Update(ctx context.Context, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	var organization *contragent.Organization
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.Organizations().FindByID(ctx, req.ID)
		if err != nil {
			return shared.ErrNotFoundID
		}

		oldName, newName := found.Rename(req.Name)
		if err := repos.Organizations().Save(ctx, found); err != nil {
			return err
		}

		links, err := repos.Contragents().FindByOrganizationID(ctx, found.ID)
		if err != nil {
			return err
		}
		for i := range links {
			links[i].ReplaceSearchName(oldName, newName)
			if err := repos.Contragents().Save(ctx, &links[i]); err != nil {
				return err
			}
		}
		organization = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToOrganizationResponse(organization)
	return &response, nil
}

// Delete soft-deletes every link of the organization. The organization row stays.
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Organizations().FindByID(ctx, id); err != nil {
			return shared.ErrNotFoundID
		}

		links, err := repos.Contragents().FindByOrganizationID(ctx, id)
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
