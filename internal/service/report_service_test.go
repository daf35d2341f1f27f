package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
	"mrftrack/internal/service"
	"mrftrack/mocks"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildDaily_ComposesThreeSections(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	date := day(2024, time.March, 5)
	dayStart := date
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	events.On("IntakeEvents", mock.Anything, port.EventFilter{MRFID: "MRF-001", Start: dayStart, End: dayEnd}).
		Return([]domain.IntakeEvent{
			{MRFID: "MRF-001", VehicleID: "KA-01", Weight: 100, Date: date},
		}, nil)
	events.On("SortedEvents", mock.Anything, port.EventFilter{Start: dayStart, End: dayEnd}).
		Return([]domain.SortedEvent{
			{Category: "Plastic", Weight: 40, Date: date},
			{Category: "Glass", Weight: 60, Date: date},
		}, nil)
	events.On("SaleEvents", mock.Anything, port.EventFilter{MRFID: "MRF-001", Start: dayStart, End: dayEnd}).
		Return([]domain.SaleEvent{
			{MRFID: "MRF-001", Category: "Plastic", Weight: 40, UnitPrice: 2.5, TotalAmount: 100, Date: date},
		}, nil)

	report, err := svc.BuildDaily(context.Background(), "MRF-001", date)

	require.NoError(t, err)
	assert.Equal(t, "MRF-001", report.MRFID)
	assert.Equal(t, dayStart, report.Date)

	assert.Equal(t, domain.IntakeTotal{TotalWeight: 100, Count: 1}, report.WasteIntake)

	assert.Len(t, report.SortedWaste, 2)
	assert.Equal(t, domain.SortedAggregate{TotalWeight: 40, Count: 1}, report.SortedWaste["Plastic"])
	assert.Equal(t, domain.SortedAggregate{TotalWeight: 60, Count: 1}, report.SortedWaste["Glass"])

	assert.Len(t, report.Sales, 1)
	assert.Equal(t, domain.SalesAggregate{TotalWeight: 40, TotalAmount: 100, Count: 1}, report.Sales["Plastic"])

	events.AssertExpectations(t)
}

func TestBuildDaily_EmptyDayYieldsZeroValues(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return([]domain.IntakeEvent{}, nil)
	events.On("SortedEvents", mock.Anything, mock.Anything).Return([]domain.SortedEvent{}, nil)
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{}, nil)

	report, err := svc.BuildDaily(context.Background(), "MRF-001", day(2024, time.March, 5))

	require.NoError(t, err)
	assert.Equal(t, domain.IntakeTotal{TotalWeight: 0, Count: 0}, report.WasteIntake)
	assert.NotNil(t, report.SortedWaste)
	assert.Empty(t, report.SortedWaste)
	assert.NotNil(t, report.Sales)
	assert.Empty(t, report.Sales)
}

func TestBuildDaily_SortedNotFacilityFiltered(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.MatchedBy(func(f port.EventFilter) bool {
		return f.MRFID == "MRF-001"
	})).Return([]domain.IntakeEvent{}, nil)
	events.On("SortedEvents", mock.Anything, mock.MatchedBy(func(f port.EventFilter) bool {
		return f.MRFID == ""
	})).Return([]domain.SortedEvent{}, nil)
	events.On("SaleEvents", mock.Anything, mock.MatchedBy(func(f port.EventFilter) bool {
		return f.MRFID == "MRF-001"
	})).Return([]domain.SaleEvent{}, nil)

	_, err := svc.BuildDaily(context.Background(), "MRF-001", day(2024, time.March, 5))

	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestBuildDaily_StoreErrorPropagates(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	report, err := svc.BuildDaily(context.Background(), "MRF-001", day(2024, time.March, 5))

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBuildMonthly_OneReportPerDay(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return([]domain.IntakeEvent{{Weight: 10}}, nil)
	events.On("SortedEvents", mock.Anything, mock.Anything).Return([]domain.SortedEvent{}, nil)
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{{Category: "Plastic", Weight: 4, TotalAmount: 8}}, nil)

	report, err := svc.BuildMonthly(context.Background(), "MRF-001", 2024, 2)

	require.NoError(t, err)
	require.Len(t, report.DailySummaries, 29) // 2024 is a leap year

	for i, daily := range report.DailySummaries {
		assert.Equal(t, day(2024, time.February, i+1), daily.Date)
	}

	assert.Equal(t, float64(10*29), report.MonthlyTotals.TotalIntakeWeight)
	assert.Equal(t, 29, report.MonthlyTotals.TotalIntakeCount)
	assert.Equal(t, float64(8*29), report.MonthlyTotals.TotalSalesAmount)
	assert.Equal(t, float64(4*29), report.MonthlyTotals.TotalSalesWeight)
}

func TestBuildMonthly_DecemberRollsOver(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return([]domain.IntakeEvent{}, nil)
	events.On("SortedEvents", mock.Anything, mock.Anything).Return([]domain.SortedEvent{}, nil)
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{}, nil)

	report, err := svc.BuildMonthly(context.Background(), "MRF-001", 2024, 12)

	require.NoError(t, err)
	require.Len(t, report.DailySummaries, 31)
	assert.Equal(t, day(2024, time.December, 31), report.DailySummaries[30].Date)
}

func TestBuildMonthly_InvalidMonthRejectedBeforeStoreAccess(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	for _, month := range []int{0, 13, -1} {
		report, err := svc.BuildMonthly(context.Background(), "MRF-001", 2024, month)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	}
	events.AssertNotCalled(t, "IntakeEvents", mock.Anything, mock.Anything)
}

func TestBuildMonthly_StoreErrorAbortsWholeReport(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreUnavailable)
	events.On("SortedEvents", mock.Anything, mock.Anything).Return([]domain.SortedEvent{}, nil).Maybe()
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{}, nil).Maybe()

	report, err := svc.BuildMonthly(context.Background(), "MRF-001", 2024, 3)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBuildCrossFacility_JoinKeyedOnIntake(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	start := day(2024, time.March, 1)
	end := day(2024, time.March, 31)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return([]domain.IntakeEvent{
		{MRFID: "MRF-001", Weight: 100},
		{MRFID: "MRF-001", Weight: 50},
		{MRFID: "MRF-002", Weight: 80},
	}, nil)
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{
		{MRFID: "MRF-001", Weight: 30, TotalAmount: 75},
		{MRFID: "MRF-003", Weight: 20, TotalAmount: 40}, // sale-only facility, dropped
	}, nil)

	report, err := svc.BuildCrossFacility(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, report.MRFSummary, 2)

	assert.Equal(t, domain.FacilitySummary{
		TotalIntakeWeight: 150,
		IntakeCount:       2,
		TotalSalesAmount:  75,
		TotalSalesWeight:  30,
		TransactionCount:  1,
	}, report.MRFSummary["MRF-001"])

	// Intake with no sales keeps zeroed sales fields.
	assert.Equal(t, domain.FacilitySummary{
		TotalIntakeWeight: 80,
		IntakeCount:       1,
	}, report.MRFSummary["MRF-002"])

	_, ok := report.MRFSummary["MRF-003"]
	assert.False(t, ok)

	assert.Equal(t, domain.CrossFacilityTotals{
		TotalIntakeWeight: 230,
		TotalIntakeCount:  3,
		TotalSalesAmount:  75,
		TotalSalesWeight:  30,
		TotalTransactions: 1,
	}, report.OverallTotals)
}

func TestBuildCrossFacility_WindowWidenedToFullDays(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	start := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 2, 9, 15, 0, 0, time.UTC)

	wantStart := day(2024, time.March, 1)
	wantEnd := day(2024, time.March, 3).Add(-time.Nanosecond)

	events.On("IntakeEvents", mock.Anything, port.EventFilter{Start: wantStart, End: wantEnd}).
		Return([]domain.IntakeEvent{}, nil)
	events.On("SaleEvents", mock.Anything, port.EventFilter{Start: wantStart, End: wantEnd}).
		Return([]domain.SaleEvent{}, nil)

	report, err := svc.BuildCrossFacility(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, wantStart, report.StartDate)
	assert.Equal(t, wantEnd, report.EndDate)
	events.AssertExpectations(t)
}

func TestBuildCrossFacility_InvalidRangeRejectedBeforeStoreAccess(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	report, err := svc.BuildCrossFacility(context.Background(), day(2024, time.March, 10), day(2024, time.March, 1))

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	events.AssertNotCalled(t, "IntakeEvents", mock.Anything, mock.Anything)
}

func TestBuildCrossFacility_SingleDayRangeIsValid(t *testing.T) {
	events := new(mocks.MockEventReader)
	svc := service.NewReportService(events)

	events.On("IntakeEvents", mock.Anything, mock.Anything).Return([]domain.IntakeEvent{}, nil)
	events.On("SaleEvents", mock.Anything, mock.Anything).Return([]domain.SaleEvent{}, nil)

	report, err := svc.BuildCrossFacility(context.Background(), day(2024, time.March, 5), day(2024, time.March, 5))

	require.NoError(t, err)
	assert.NotNil(t, report.MRFSummary)
	assert.Empty(t, report.MRFSummary)
}
