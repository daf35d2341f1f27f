package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"mrftrack/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BuildDaily(ctx context.Context, mrfID string, date time.Time) (*domain.DailyReport, error) {
	args := m.Called(ctx, mrfID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockReportService) BuildMonthly(ctx context.Context, mrfID string, year, month int) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, mrfID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

func (m *MockReportService) BuildCrossFacility(ctx context.Context, start, end time.Time) (*domain.CrossFacilityReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CrossFacilityReport), args.Error(1)
}
