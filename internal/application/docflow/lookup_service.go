package docflow

import (
	"context"

	"github.com/documentflow/backend/internal/domain/docflow"
)

// LookupService serves the state and document type reference tables.
type LookupService struct {
	stateRepo   docflow.StateRepository
	docTypeRepo docflow.DocTypeRepository
}

// NewLookupService creates a new LookupService
func NewLookupService(stateRepo docflow.StateRepository, docTypeRepo docflow.DocTypeRepository) *LookupService {
	return &LookupService{
		stateRepo:   stateRepo,
		docTypeRepo: docTypeRepo,
	}
}

// ListStates returns every workflow state
func (s *LookupService) ListStates(ctx context.Context) ([]StateResponse, error) {
	states, err := s.stateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]StateResponse, 0, len(states))
	for i := range states {
		responses = append(responses, ToStateResponse(&states[i]))
	}
	return responses, nil
}

// ListDocTypes returns every document type
func (s *LookupService) ListDocTypes(ctx context.Context) ([]DocTypeResponse, error) {
	docTypes, err := s.docTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]DocTypeResponse, 0, len(docTypes))
	for i := range docTypes {
		responses = append(responses, ToDocTypeResponse(&docTypes[i]))
	}
	return responses, nil
}

// CreateDocType adds a document type
func (s *LookupService) CreateDocType(ctx context.Context, name string) (*DocTypeResponse, error) {
	docType, err := docflow.NewDocType(name)
	if err != nil {
		return nil, err
	}
	if err := s.docTypeRepo.Save(ctx, docType); err != nil {
		return nil, err
	}
	resp := ToDocTypeResponse(docType)
	return &resp, nil
}
