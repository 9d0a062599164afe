package docflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/documentflow/backend/internal/domain/docflow"
	"github.com/documentflow/backend/internal/domain/shared"
)

const regNumberKindIn = "IN"

// DocInService manages incoming documents.
type DocInService struct {
	docInRepo   docflow.DocInRepository
	stateRepo   docflow.StateRepository
	docTypeRepo docflow.DocTypeRepository
	scope       TransactionScope
}

// NewDocInService creates a new DocInService
func NewDocInService(
	docInRepo docflow.DocInRepository,
	stateRepo docflow.StateRepository,
	docTypeRepo docflow.DocTypeRepository,
	scope TransactionScope,
) *DocInService {
	return &DocInService{
		docInRepo:   docInRepo,
		stateRepo:   stateRepo,
		docTypeRepo: docTypeRepo,
		scope:       scope,
	}
}

// Create registers an incoming document: assigns the next IN-<year>-<seq>
// number and the REGISTERED state, then persists. The sequence increment
// and the insert share one transaction so a failed save never consumes a
// number.
func (s *DocInService) Create(ctx context.Context, req CreateDocInRequest) (*DocInResponse, error) {
	if strings.TrimSpace(req.Sender) == "" {
		return nil, shared.NewInvalidArgument("Sender is empty")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, shared.NewInvalidArgument("Subject is empty")
	}
	if _, err := s.docTypeRepo.FindByID(ctx, req.DocTypeID); err != nil {
		return nil, shared.ErrNotFoundID
	}

	registered, err := s.stateRepo.FindByBusinessKey(ctx, docflow.StateRegistered)
	if err != nil {
		return nil, fmt.Errorf("lookup registered state: %w", err)
	}

	var doc *docflow.DocIn
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		year := time.Now().Year()
		seq, err := repos.RegNumbers().NextNumber(ctx, regNumberKindIn, year)
		if err != nil {
			return fmt.Errorf("next reg number: %w", err)
		}
		regNumber := fmt.Sprintf("%s-%d-%d", regNumberKindIn, year, seq)

		created, err := docflow.NewDocIn(regNumber, req.Sender, req.Subject, req.DocTypeID, req.DepartmentID, registered.ID)
		if err != nil {
			return err
		}
		if err := repos.DocsIn().Save(ctx, created); err != nil {
			return err
		}
		doc = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToDocInResponse(doc)
	return &resp, nil
}

// GetByID retrieves one incoming document card
func (s *DocInService) GetByID(ctx context.Context, id uuid.UUID) (*DocInResponse, error) {
	doc, err := s.docInRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocInResponse(doc)
	return &resp, nil
}

// List returns a page of incoming documents ordered by registration date
func (s *DocInService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[DocInResponse], error) {
	docs, total, err := s.docInRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]DocInResponse, 0, len(docs))
	for i := range docs {
		items = append(items, ToDocInResponse(&docs[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Delete hard-deletes an incoming document. Incoming documents have no
// deleted state; removal is physical.
func (s *DocInService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.DocsIn().FindByID(ctx, id); err != nil {
			return err
		}
		return repos.DocsIn().Delete(ctx, id)
	})
}
