package docflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/documentflow/backend/internal/domain/docflow"
	"github.com/documentflow/backend/internal/domain/shared"
)

// MockDocInRepository is a mock implementation of DocInRepository
type MockDocInRepository struct {
	mock.Mock
}

func (m *MockDocInRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocIn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docflow.DocIn), args.Error(1)
}

func (m *MockDocInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]docflow.DocIn, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]docflow.DocIn), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocInRepository) Save(ctx context.Context, doc *docflow.DocIn) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocOutRepository is a mock implementation of DocOutRepository
type MockDocOutRepository struct {
	mock.Mock
}

func (m *MockDocOutRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocOut, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docflow.DocOut), args.Error(1)
}

func (m *MockDocOutRepository) FindAll(ctx context.Context, filter shared.Filter, docFilter docflow.DocOutFilter) ([]docflow.DocOut, int64, error) {
	args := m.Called(ctx, filter, docFilter)
	return args.Get(0).([]docflow.DocOut), args.Get(1).(int64), args.Error(2)
}

func (m *MockDocOutRepository) Save(ctx context.Context, doc *docflow.DocOut) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockStateRepository is a mock implementation of StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.State, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docflow.State), args.Error(1)
}

func (m *MockStateRepository) FindByBusinessKey(ctx context.Context, key docflow.BusinessKey) (*docflow.State, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docflow.State), args.Error(1)
}

func (m *MockStateRepository) FindAll(ctx context.Context) ([]docflow.State, error) {
	args := m.Called(ctx)
	return args.Get(0).([]docflow.State), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *docflow.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// MockDocTypeRepository is a mock implementation of DocTypeRepository
type MockDocTypeRepository struct {
	mock.Mock
}

func (m *MockDocTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*docflow.DocType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docflow.DocType), args.Error(1)
}

func (m *MockDocTypeRepository) FindAll(ctx context.Context) ([]docflow.DocType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]docflow.DocType), args.Error(1)
}

func (m *MockDocTypeRepository) Save(ctx context.Context, docType *docflow.DocType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

// MockRegNumberRepository is a mock implementation of RegNumberRepository
type MockRegNumberRepository struct {
	mock.Mock
}

func (m *MockRegNumberRepository) NextNumber(ctx context.Context, kind string, year int) (int64, error) {
	args := m.Called(ctx, kind, year)
	return args.Get(0).(int64), args.Error(1)
}
