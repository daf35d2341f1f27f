package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"mrftrack/internal/aggregate"
	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

// ReportService computes derived reports from the record store. Every
// report is built fresh from stored events; no state is held between
// calls. Store failures abort the whole computation and propagate
// unchanged: there is no partial-report mode.
type ReportService interface {
	BuildDaily(ctx context.Context, mrfID string, date time.Time) (*domain.DailyReport, error)
	BuildMonthly(ctx context.Context, mrfID string, year, month int) (*domain.MonthlyReport, error)
	BuildCrossFacility(ctx context.Context, start, end time.Time) (*domain.CrossFacilityReport, error)
}

type reportService struct {
	events port.EventReader
}

// NewReportService creates a new ReportService implementation.
func NewReportService(events port.EventReader) ReportService {
	return &reportService{events: events}
}

// maxDayFetches caps concurrent per-day queries in BuildMonthly.
const maxDayFetches = 8

func intakeWeight(e domain.IntakeEvent) float64 { return e.Weight }
func sortedWeight(e domain.SortedEvent) float64 { return e.Weight }
func saleWeight(e domain.SaleEvent) float64     { return e.Weight }
func saleAmount(e domain.SaleEvent) float64     { return e.TotalAmount }

// dayBounds widens a bare date to the inclusive full-day window, from
// midnight through the last instant of the same calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// BuildDaily composes the intake total, sorted-waste breakdown and sales
// breakdown for one calendar day at one facility.
//
// Sorted waste is aggregated across all facilities, not just mrfID. The
// source system tracks sorting without a facility column, so categories
// are effectively global per day; flagged for product clarification and
// preserved as-is.
func (s *reportService) BuildDaily(ctx context.Context, mrfID string, date time.Time) (*domain.DailyReport, error) {
	start, end := dayBounds(date)

	intake, err := s.events.IntakeEvents(ctx, port.EventFilter{MRFID: mrfID, Start: start, End: end})
	if err != nil {
		return nil, err
	}
	sorted, err := s.events.SortedEvents(ctx, port.EventFilter{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	sales, err := s.events.SaleEvents(ctx, port.EventFilter{MRFID: mrfID, Start: start, End: end})
	if err != nil {
		return nil, err
	}

	intakeTotal := aggregate.Total(intake, intakeWeight, nil)

	sortedBreakdown := make(map[string]domain.SortedAggregate)
	for category, row := range aggregate.ByKey(sorted, func(e domain.SortedEvent) string { return e.Category }, sortedWeight, nil) {
		sortedBreakdown[category] = domain.SortedAggregate{TotalWeight: row.TotalWeight, Count: row.Count}
	}

	salesBreakdown := make(map[string]domain.SalesAggregate)
	for category, row := range aggregate.ByKey(sales, func(e domain.SaleEvent) string { return e.Category }, saleWeight, saleAmount) {
		salesBreakdown[category] = domain.SalesAggregate{TotalWeight: row.TotalWeight, TotalAmount: row.TotalAmount, Count: row.Count}
	}

	return &domain.DailyReport{
		Date:        start,
		MRFID:       mrfID,
		WasteIntake: domain.IntakeTotal{TotalWeight: intakeTotal.TotalWeight, Count: intakeTotal.Count},
		SortedWaste: sortedBreakdown,
		Sales:       salesBreakdown,
	}, nil
}

// BuildMonthly builds one DailyReport per calendar day of the month and
// reduces them into monthly totals. Day fetches are independent and run
// concurrently; the daily sequence is reassembled in chronological order
// before reduction.
func (s *reportService) BuildMonthly(ctx context.Context, mrfID string, year, month int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
	days := last.Day()

	daily := make([]domain.DailyReport, days)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDayFetches)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		g.Go(func() error {
			report, err := s.BuildDaily(gctx, mrfID, day)
			if err != nil {
				return err
			}
			daily[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totals domain.MonthlyTotals
	for _, day := range daily {
		totals.TotalIntakeWeight += day.WasteIntake.TotalWeight
		totals.TotalIntakeCount += day.WasteIntake.Count
		for _, category := range day.Sales {
			totals.TotalSalesAmount += category.TotalAmount
			totals.TotalSalesWeight += category.TotalWeight
		}
	}

	return &domain.MonthlyReport{
		Year:           year,
		Month:          month,
		MRFID:          mrfID,
		DailySummaries: daily,
		MonthlyTotals:  totals,
	}, nil
}

// BuildCrossFacility aggregates intake and sales per facility over an
// arbitrary date range and joins the two keyed on facility. The join is
// asymmetric on purpose: every facility with intake appears, with zeroed
// sales fields when no sale matches, while facilities with sales but no
// intake in range are dropped. Preserved from the source system; flagged
// for product clarification rather than widened to a full outer join.
func (s *reportService) BuildCrossFacility(ctx context.Context, start, end time.Time) (*domain.CrossFacilityReport, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidDateRange
	}

	winStart, _ := dayBounds(start)
	_, winEnd := dayBounds(end)

	intake, err := s.events.IntakeEvents(ctx, port.EventFilter{Start: winStart, End: winEnd})
	if err != nil {
		return nil, err
	}
	sales, err := s.events.SaleEvents(ctx, port.EventFilter{Start: winStart, End: winEnd})
	if err != nil {
		return nil, err
	}

	intakeByMRF := aggregate.ByKey(intake, func(e domain.IntakeEvent) string { return e.MRFID }, intakeWeight, nil)
	salesByMRF := aggregate.ByKey(sales, func(e domain.SaleEvent) string { return e.MRFID }, saleWeight, saleAmount)

	summary := make(map[string]domain.FacilitySummary, len(intakeByMRF))
	for mrfID, row := range intakeByMRF {
		entry := domain.FacilitySummary{
			TotalIntakeWeight: row.TotalWeight,
			IntakeCount:       row.Count,
		}
		if saleRow, ok := salesByMRF[mrfID]; ok {
			entry.TotalSalesAmount = saleRow.TotalAmount
			entry.TotalSalesWeight = saleRow.TotalWeight
			entry.TransactionCount = saleRow.Count
		}
		summary[mrfID] = entry
	}

	var totals domain.CrossFacilityTotals
	for _, entry := range summary {
		totals.TotalIntakeWeight += entry.TotalIntakeWeight
		totals.TotalIntakeCount += entry.IntakeCount
		totals.TotalSalesAmount += entry.TotalSalesAmount
		totals.TotalSalesWeight += entry.TotalSalesWeight
		totals.TotalTransactions += entry.TransactionCount
	}

	return &domain.CrossFacilityReport{
		StartDate:     winStart,
		EndDate:       winEnd,
		MRFSummary:    summary,
		OverallTotals: totals,
	}, nil
}
