package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mrftrack/internal/domain"
)

// MockSaleRepo is a mock implementation of port.SaleRepository.
type MockSaleRepo struct {
	mock.Mock
}

func (m *MockSaleRepo) Create(ctx context.Context, sale *domain.SaleEvent) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleEvent), args.Error(1)
}

func (m *MockSaleRepo) List(ctx context.Context, mrfID string, start, end *time.Time, category string) ([]domain.SaleEvent, error) {
	args := m.Called(ctx, mrfID, start, end, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleEvent), args.Error(1)
}

func (m *MockSaleRepo) Update(ctx context.Context, sale *domain.SaleEvent) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
