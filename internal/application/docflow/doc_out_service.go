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

const regNumberKindOut = "OUT"

// DocOutService manages outgoing documents. Deleting is a state
// transition, not a row removal; the card stays in listings filtered by
// the DELETED state.
type DocOutService struct {
	docOutRepo  docflow.DocOutRepository
	stateRepo   docflow.StateRepository
	docTypeRepo docflow.DocTypeRepository
	scope       TransactionScope
}

// NewDocOutService creates a new DocOutService
func NewDocOutService(
	docOutRepo docflow.DocOutRepository,
	stateRepo docflow.StateRepository,
	docTypeRepo docflow.DocTypeRepository,
	scope TransactionScope,
) *DocOutService {
	return &DocOutService{
		docOutRepo:  docOutRepo,
		stateRepo:   stateRepo,
		docTypeRepo: docTypeRepo,
		scope:       scope,
	}
}

// Create drafts an outgoing document with the next OUT-<year>-<seq>
// number and the REGISTERED state.
func (s *DocOutService) Create(ctx context.Context, creatorID uuid.UUID, req CreateDocOutRequest) (*DocOutResponse, error) {
	if strings.TrimSpace(req.Subject) == "" {
		return nil, shared.NewInvalidArgument("Subject is empty")
	}
	if creatorID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if _, err := s.docTypeRepo.FindByID(ctx, req.DocTypeID); err != nil {
		return nil, shared.ErrNotFoundID
	}

	registered, err := s.stateRepo.FindByBusinessKey(ctx, docflow.StateRegistered)
	if err != nil {
		return nil, fmt.Errorf("lookup registered state: %w", err)
	}

	var doc *docflow.DocOut
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		year := time.Now().Year()
		seq, err := repos.RegNumbers().NextNumber(ctx, regNumberKindOut, year)
		if err != nil {
			return fmt.Errorf("next reg number: %w", err)
		}
		regNumber := fmt.Sprintf("%s-%d-%d", regNumberKindOut, year, seq)

		created, err := docflow.NewDocOut(regNumber, req.Subject, req.DocTypeID, registered.ID, creatorID)
		if err != nil {
			return err
		}
		if req.SignerID != nil {
			created.AssignSigner(*req.SignerID)
		}
		if req.ContragentID != nil {
			created.AddressTo(*req.ContragentID)
		}

		if err := repos.DocsOut().Save(ctx, created); err != nil {
			return err
		}
		doc = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToDocOutResponse(doc)
	return &resp, nil
}

// GetByID retrieves one outgoing document card
func (s *DocOutService) GetByID(ctx context.Context, id uuid.UUID) (*DocOutResponse, error) {
	doc, err := s.docOutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocOutResponse(doc)
	return &resp, nil
}

// List returns a page of outgoing documents, newest first
func (s *DocOutService) List(ctx context.Context, filter shared.Filter, req ListDocOutRequest) (*shared.Paginated[DocOutResponse], error) {
	docFilter := docflow.DocOutFilter{
		StateID:   req.StateID,
		DocTypeID: req.DocTypeID,
		CreatorID: req.CreatorID,
		SignerID:  req.SignerID,
	}

	docs, total, err := s.docOutRepo.FindAll(ctx, filter, docFilter)
	if err != nil {
		return nil, err
	}

	items := make([]DocOutResponse, 0, len(docs))
	for i := range docs {
		items = append(items, ToDocOutResponse(&docs[i]))
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update changes the card fields. The state is assigned as given; there
// is no transition table.
func (s *DocOutService) Update(ctx context.Context, id uuid.UUID, req UpdateDocOutRequest) (*DocOutResponse, error) {
	var doc *docflow.DocOut
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.DocsOut().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if subject := strings.TrimSpace(req.Subject); subject != "" {
			found.Subject = subject
		}
		if req.StateID != nil {
			if _, err := repos.States().FindByID(ctx, *req.StateID); err != nil {
				return shared.ErrNotFoundID
			}
			found.SetState(*req.StateID)
		}
		if req.SignerID != nil {
			found.AssignSigner(*req.SignerID)
		}
		if req.ContragentID != nil {
			found.AddressTo(*req.ContragentID)
		}
		found.Touch()

		if err := repos.DocsOut().Save(ctx, found); err != nil {
			return err
		}
		doc = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToDocOutResponse(doc)
	return &resp, nil
}

// Delete moves the document to the DELETED state. Documents already in a
// terminal state (signed, deleted, archived) cannot be deleted.
func (s *DocOutService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		doc, err := repos.DocsOut().FindByID(ctx, id)
		if err != nil {
			return err
		}

		current, err := repos.States().FindByID(ctx, doc.StateID)
		if err != nil {
			return fmt.Errorf("lookup current state: %w", err)
		}
		if current.IsTerminal() {
			return shared.ErrInvalidState
		}

		deleted, err := repos.States().FindByBusinessKey(ctx, docflow.StateDeleted)
		if err != nil {
			return fmt.Errorf("lookup deleted state: %w", err)
		}
		doc.SetState(deleted.ID)
		return repos.DocsOut().Save(ctx, doc)
	})
}
