package contragent

import (
	"context"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/contragent"
	"github.com/documentflow/backend/internal/domain/shared"
)

// AddressService handles the address registry operations
type AddressService struct {
	addressRepo    contragent.AddressRepository
	contragentRepo contragent.ContragentRepository
	scope          TransactionScope
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo contragent.AddressRepository, contragentRepo contragent.ContragentRepository, scope TransactionScope) *AddressService {
	return &AddressService{
		addressRepo:    addressRepo,
		contragentRepo: contragentRepo,
		scope:          scope,
	}
}

// FindAll lists addresses matching the supplied fields. Country, city and
// street are required; the other fields constrain the query only when present.
func (s *AddressService) FindAll(ctx context.Context, query contragent.AddressQuery) ([]AddressResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.FindByConditions(ctx, query.Conditions())
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses, nil
}

// GetByID retrieves an address by its own row id
func (s *AddressService) GetByID(ctx context.Context, id uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Update rewrites an address row with normalized fields
func (s *AddressService) Update(ctx context.Context, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, shared.ErrNotFoundID
	}

	updated := contragent.NewAddress(req.PostalIndex, req.Country, req.City, req.Street, req.HouseNumber, req.ApartmentNumber)
	address.PostalIndex = updated.PostalIndex
	address.Country = updated.Country
	address.City = updated.City
	address.Street = updated.Street
	address.HouseNumber = updated.HouseNumber
	address.ApartmentNumber = updated.ApartmentNumber
	address.Touch()

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Delete hard-deletes an address. Links referencing it are de-owned first
// so they survive for history; the de-owning and the row removal commit or
// roll back as one transaction.
func (s *AddressService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Addresses().FindByID(ctx, id); err != nil {
			return shared.ErrNotFoundID
		}

		links, err := repos.Contragents().FindByAddressID(ctx, id)
		if err != nil {
			return err
		}
		for i := range links {
			links[i].DisownAddress()
			if err := repos.Contragents().Save(ctx, &links[i]); err != nil {
				return err
			}
		}

		return repos.Addresses().Delete(ctx, id)
	})
}
