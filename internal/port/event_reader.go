package port

import (
	"context"
	"time"

	"mrftrack/internal/domain"
)

// EventFilter selects events by facility and an inclusive timestamp range.
// An empty MRFID matches every facility. Callers are responsible for
// widening bare dates to full-day windows; the adapter applies the
// bounds literally.
type EventFilter struct {
	MRFID string
	Start time.Time
	End   time.Time
}

// EventReader is the read-only record store adapter consumed by the
// reporting core. Results come back in arbitrary order; grouping is
// order-independent. Implementations wrap unreachable-store failures in
// domain.ErrStoreUnavailable and never retry.
type EventReader interface {
	IntakeEvents(ctx context.Context, f EventFilter) ([]domain.IntakeEvent, error)
	SortedEvents(ctx context.Context, f EventFilter) ([]domain.SortedEvent, error)
	SaleEvents(ctx context.Context, f EventFilter) ([]domain.SaleEvent, error)

	// FacilityIDs returns the distinct facilities with intake activity in
	// the range. Used by the snapshot scheduler.
	FacilityIDs(ctx context.Context, start, end time.Time) ([]string, error)
}
