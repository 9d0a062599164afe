package docflow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/documentflow/backend/internal/domain/docflow"
	"github.com/documentflow/backend/internal/domain/shared"
)

func newDocInServiceWithMocks() (*DocInService, *MockDocInRepository, *MockStateRepository, *MockDocTypeRepository, *MockRegNumberRepository) {
	docInRepo := new(MockDocInRepository)
	stateRepo := new(MockStateRepository)
	docTypeRepo := new(MockDocTypeRepository)
	regNumberRepo := new(MockRegNumberRepository)
	scope := NewNoOpTransactionScope(docInRepo, new(MockDocOutRepository), stateRepo, regNumberRepo)
	svc := NewDocInService(docInRepo, stateRepo, docTypeRepo, scope)
	return svc, docInRepo, stateRepo, docTypeRepo, regNumberRepo
}

func newDocOutServiceWithMocks() (*DocOutService, *MockDocOutRepository, *MockStateRepository, *MockDocTypeRepository, *MockRegNumberRepository) {
	docOutRepo := new(MockDocOutRepository)
	stateRepo := new(MockStateRepository)
	docTypeRepo := new(MockDocTypeRepository)
	regNumberRepo := new(MockRegNumberRepository)
	scope := NewNoOpTransactionScope(new(MockDocInRepository), docOutRepo, stateRepo, regNumberRepo)
	svc := NewDocOutService(docOutRepo, stateRepo, docTypeRepo, scope)
	return svc, docOutRepo, stateRepo, docTypeRepo, regNumberRepo
}

func TestDocInService_Create_AssignsRegNumberAndState(t *testing.T) {
	svc, docInRepo, stateRepo, docTypeRepo, regNumberRepo := newDocInServiceWithMocks()

	docType, _ := docflow.NewDocType("Letter")
	registered := docflow.NewState(docflow.StateRegistered, "Registered")

	docTypeRepo.On("FindByID", mock.Anything, docType.ID).Return(docType, nil)
	stateRepo.On("FindByBusinessKey", mock.Anything, docflow.StateRegistered).Return(registered, nil)
	regNumberRepo.On("NextNumber", mock.Anything, "IN", time.Now().Year()).Return(int64(7), nil)
	docInRepo.On("Save", mock.Anything, mock.AnythingOfType("*docflow.DocIn")).Return(nil)

	resp, err := svc.Create(context.Background(), CreateDocInRequest{
		Sender:    "Acme LLC",
		Subject:   "Contract draft",
		DocTypeID: docType.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("IN-%d-7", time.Now().Year()), resp.RegNumber)
	assert.Equal(t, registered.ID, resp.StateID)
}

func TestDocInService_Create_UnknownDocType(t *testing.T) {
	svc, docInRepo, _, docTypeRepo, _ := newDocInServiceWithMocks()

	docTypeRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), CreateDocInRequest{
		Sender:    "Acme LLC",
		Subject:   "Contract draft",
		DocTypeID: uuid.New(),
	})

	assert.ErrorIs(t, err, shared.ErrNotFoundID)
	docInRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDocInService_List(t *testing.T) {
	svc, docInRepo, _, _, _ := newDocInServiceWithMocks()

	registered := docflow.NewState(docflow.StateRegistered, "Registered")
	doc, _ := docflow.NewDocIn("IN-2026-1", "Acme LLC", "Invoice", uuid.New(), nil, registered.ID)

	filter := shared.DefaultFilter()
	docInRepo.On("FindAll", mock.Anything, filter).Return([]docflow.DocIn{*doc}, int64(1), nil)

	page, err := svc.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "IN-2026-1", page.Items[0].RegNumber)
}

func TestDocInService_Delete_HardDeletes(t *testing.T) {
	svc, docInRepo, _, _, _ := newDocInServiceWithMocks()

	doc, _ := docflow.NewDocIn("IN-2026-1", "Acme LLC", "Invoice", uuid.New(), nil, uuid.New())

	docInRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
	docInRepo.On("Delete", mock.Anything, doc.ID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), doc.ID))
	docInRepo.AssertCalled(t, "Delete", mock.Anything, doc.ID)
}

func TestDocOutService_Create_RequiresCreator(t *testing.T) {
	svc, _, _, _, _ := newDocOutServiceWithMocks()

	_, err := svc.Create(context.Background(), uuid.Nil, CreateDocOutRequest{
		Subject:   "Outgoing letter",
		DocTypeID: uuid.New(),
	})

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestDocOutService_Create_AssignsOutNumber(t *testing.T) {
	svc, docOutRepo, stateRepo, docTypeRepo, regNumberRepo := newDocOutServiceWithMocks()

	docType, _ := docflow.NewDocType("Letter")
	registered := docflow.NewState(docflow.StateRegistered, "Registered")
	creatorID := uuid.New()
	signerID := uuid.New()

	docTypeRepo.On("FindByID", mock.Anything, docType.ID).Return(docType, nil)
	stateRepo.On("FindByBusinessKey", mock.Anything, docflow.StateRegistered).Return(registered, nil)
	regNumberRepo.On("NextNumber", mock.Anything, "OUT", time.Now().Year()).Return(int64(3), nil)
	docOutRepo.On("Save", mock.Anything, mock.AnythingOfType("*docflow.DocOut")).Return(nil)

	resp, err := svc.Create(context.Background(), creatorID, CreateDocOutRequest{
		Subject:   "Outgoing letter",
		DocTypeID: docType.ID,
		SignerID:  &signerID,
	})

	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("OUT-%d-3", time.Now().Year()), resp.RegNumber)
	assert.Equal(t, creatorID, resp.CreatorID)
	assert.Equal(t, signerID, *resp.SignerID)
}

func TestDocOutService_Delete_TransitionsToDeleted(t *testing.T) {
	svc, docOutRepo, stateRepo, _, _ := newDocOutServiceWithMocks()

	onSigning := docflow.NewState(docflow.StateOnSigning, "On signing")
	deleted := docflow.NewState(docflow.StateDeleted, "Deleted")
	doc, _ := docflow.NewDocOut("OUT-2026-1", "Letter", uuid.New(), onSigning.ID, uuid.New())

	docOutRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
	stateRepo.On("FindByID", mock.Anything, onSigning.ID).Return(onSigning, nil)
	stateRepo.On("FindByBusinessKey", mock.Anything, docflow.StateDeleted).Return(deleted, nil)
	docOutRepo.On("Save", mock.Anything, doc).Return(nil)

	err := svc.Delete(context.Background(), doc.ID)

	assert.NoError(t, err)
	assert.Equal(t, deleted.ID, doc.StateID)
}

func TestDocOutService_Delete_TerminalStateRejected(t *testing.T) {
	svc, docOutRepo, stateRepo, _, _ := newDocOutServiceWithMocks()

	signed := docflow.NewState(docflow.StateSigned, "Signed")
	doc, _ := docflow.NewDocOut("OUT-2026-1", "Letter", uuid.New(), signed.ID, uuid.New())

	docOutRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
	stateRepo.On("FindByID", mock.Anything, signed.ID).Return(signed, nil)

	err := svc.Delete(context.Background(), doc.ID)

	assert.ErrorIs(t, err, shared.ErrInvalidState)
	docOutRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDocOutService_Update_SetsStateDirectly(t *testing.T) {
	svc, docOutRepo, stateRepo, _, _ := newDocOutServiceWithMocks()

	onSigning := docflow.NewState(docflow.StateOnSigning, "On signing")
	doc, _ := docflow.NewDocOut("OUT-2026-1", "Letter", uuid.New(), uuid.New(), uuid.New())

	docOutRepo.On("FindByID", mock.Anything, doc.ID).Return(doc, nil)
	stateRepo.On("FindByID", mock.Anything, onSigning.ID).Return(onSigning, nil)
	docOutRepo.On("Save", mock.Anything, doc).Return(nil)

	resp, err := svc.Update(context.Background(), doc.ID, UpdateDocOutRequest{
		Subject: "Revised letter",
		StateID: &onSigning.ID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Revised letter", resp.Subject)
	assert.Equal(t, onSigning.ID, resp.StateID)
}

func TestDocOutService_List_PassesFilters(t *testing.T) {
	svc, docOutRepo, _, _, _ := newDocOutServiceWithMocks()

	stateID := uuid.New()
	creatorID := uuid.New()
	filter := shared.DefaultFilter()

	docOutRepo.On("FindAll", mock.Anything, filter, docflow.DocOutFilter{
		StateID:   &stateID,
		CreatorID: &creatorID,
	}).Return([]docflow.DocOut{}, int64(0), nil)

	page, err := svc.List(context.Background(), filter, ListDocOutRequest{
		StateID:   &stateID,
		CreatorID: &creatorID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	docOutRepo.AssertExpectations(t)
}

func TestLookupService_ListStates(t *testing.T) {
	stateRepo := new(MockStateRepository)
	docTypeRepo := new(MockDocTypeRepository)
	svc := NewLookupService(stateRepo, docTypeRepo)

	states := []docflow.State{
		*docflow.NewState(docflow.StateRegistered, "Registered"),
		*docflow.NewState(docflow.StateSigned, "Signed"),
	}
	stateRepo.On("FindAll", mock.Anything).Return(states, nil)

	responses, err := svc.ListStates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "REGISTERED", responses[0].BusinessKey)
}

func TestLookupService_CreateDocType_EmptyName(t *testing.T) {
	svc := NewLookupService(new(MockStateRepository), new(MockDocTypeRepository))

	_, err := svc.CreateDocType(context.Background(), "   ")

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ARGUMENT", domainErr.Code)
}
