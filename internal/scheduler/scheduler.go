package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mrftrack/internal/port"
	"mrftrack/internal/service"
)

// Scheduler runs the nightly snapshot job: shortly after midnight it
// rebuilds yesterday's daily report for every facility that recorded
// events and logs the totals. Reports are derived values, so the job is
// safe to miss or rerun; it exists to surface aggregation failures
// before anyone asks for the report.
type Scheduler struct {
	cron    *cron.Cron
	reports service.ReportService
	events  port.EventReader
	log     *zap.Logger
}

// New creates a Scheduler with the given cron spec.
func New(spec string, reports service.ReportService, events port.EventReader, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		reports: reports,
		events:  events,
		log:     log,
	}

	if _, err := s.cron.AddFunc(spec, s.snapshotYesterday); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins scheduling in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("snapshot scheduler started")
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("snapshot scheduler stopped")
}

func (s *Scheduler) snapshotYesterday() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	dayStart := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	facilities, err := s.events.FacilityIDs(ctx, dayStart, dayEnd)
	if err != nil {
		s.log.Error("snapshot: listing facilities", zap.Error(err))
		return
	}

	for _, mrfID := range facilities {
		report, err := s.reports.BuildDaily(ctx, mrfID, dayStart)
		if err != nil {
			s.log.Error("snapshot: building daily report",
				zap.String("mrf_id", mrfID),
				zap.Error(err),
			)
			continue
		}

		var salesAmount float64
		for _, agg := range report.Sales {
			salesAmount += agg.TotalAmount
		}
		s.log.Info("daily snapshot",
			zap.String("mrf_id", mrfID),
			zap.String("date", dayStart.Format("2006-01-02")),
			zap.Float64("intake_weight", report.WasteIntake.TotalWeight),
			zap.Int("intake_count", report.WasteIntake.Count),
			zap.Float64("sales_amount", salesAmount),
		)
	}
}
