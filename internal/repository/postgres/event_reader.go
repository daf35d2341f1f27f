package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

type eventReader struct {
	db *sqlx.DB
}

// NewEventReader creates the read-only record store adapter used by the
// reporting core. Query failures wrap domain.ErrStoreUnavailable and
// propagate to the caller without retries.
func NewEventReader(db *sqlx.DB) port.EventReader {
	return &eventReader{db: db}
}

func (r *eventReader) IntakeEvents(ctx context.Context, f port.EventFilter) ([]domain.IntakeEvent, error) {
	query := "SELECT * FROM waste_intake WHERE date >= $1 AND date <= $2"
	args := []interface{}{f.Start, f.End}
	if f.MRFID != "" {
		query += " AND mrf_id = $3"
		args = append(args, f.MRFID)
	}

	events := []domain.IntakeEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("eventReader.IntakeEvents: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return events, nil
}

func (r *eventReader) SortedEvents(ctx context.Context, f port.EventFilter) ([]domain.SortedEvent, error) {
	// Sorted events carry no facility column of their own; f.MRFID does
	// not apply here. See ReportService.BuildDaily.
	query := "SELECT * FROM sorted_waste WHERE date >= $1 AND date <= $2"
	args := []interface{}{f.Start, f.End}

	events := []domain.SortedEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("eventReader.SortedEvents: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return events, nil
}

func (r *eventReader) SaleEvents(ctx context.Context, f port.EventFilter) ([]domain.SaleEvent, error) {
	query := "SELECT * FROM waste_sales WHERE date >= $1 AND date <= $2"
	args := []interface{}{f.Start, f.End}
	if f.MRFID != "" {
		query += " AND mrf_id = $3"
		args = append(args, f.MRFID)
	}

	events := []domain.SaleEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("eventReader.SaleEvents: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return events, nil
}

func (r *eventReader) FacilityIDs(ctx context.Context, start, end time.Time) ([]string, error) {
	ids := []string{}
	err := r.db.SelectContext(ctx, &ids,
		"SELECT DISTINCT mrf_id FROM waste_intake WHERE date >= $1 AND date <= $2 ORDER BY mrf_id",
		start, end)
	if err != nil {
		return nil, fmt.Errorf("eventReader.FacilityIDs: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return ids, nil
}
