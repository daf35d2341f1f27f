package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

// MockEventReader is a mock implementation of port.EventReader.
type MockEventReader struct {
	mock.Mock
}

func (m *MockEventReader) IntakeEvents(ctx context.Context, f port.EventFilter) ([]domain.IntakeEvent, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntakeEvent), args.Error(1)
}

func (m *MockEventReader) SortedEvents(ctx context.Context, f port.EventFilter) ([]domain.SortedEvent, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SortedEvent), args.Error(1)
}

func (m *MockEventReader) SaleEvents(ctx context.Context, f port.EventFilter) ([]domain.SaleEvent, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleEvent), args.Error(1)
}

func (m *MockEventReader) FacilityIDs(ctx context.Context, start, end time.Time) ([]string, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
