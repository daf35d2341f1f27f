package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"mrftrack/internal/domain"
)

// MockIntakeRepo is a mock implementation of port.IntakeRepository.
type MockIntakeRepo struct {
	mock.Mock
}

func (m *MockIntakeRepo) Create(ctx context.Context, intake *domain.IntakeEvent) error {
	args := m.Called(ctx, intake)
	return args.Error(0)
}

func (m *MockIntakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeEvent), args.Error(1)
}

func (m *MockIntakeRepo) ListByFacility(ctx context.Context, mrfID string, start, end *time.Time) ([]domain.IntakeEvent, error) {
	args := m.Called(ctx, mrfID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntakeEvent), args.Error(1)
}
