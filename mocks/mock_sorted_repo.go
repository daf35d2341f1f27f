package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mrftrack/internal/domain"
)

// MockSortedRepo is a mock implementation of port.SortedRepository.
type MockSortedRepo struct {
	mock.Mock
}

func (m *MockSortedRepo) Create(ctx context.Context, sorted *domain.SortedEvent) error {
	args := m.Called(ctx, sorted)
	return args.Error(0)
}

func (m *MockSortedRepo) ListByIntake(ctx context.Context, intakeID uuid.UUID) ([]domain.SortedEvent, error) {
	args := m.Called(ctx, intakeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SortedEvent), args.Error(1)
}
