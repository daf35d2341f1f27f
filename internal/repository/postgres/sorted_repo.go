package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

type sortedRepo struct {
	db *sqlx.DB
}

// NewSortedRepo creates a new PostgreSQL-backed SortedRepository.
func NewSortedRepo(db *sqlx.DB) port.SortedRepository {
	return &sortedRepo{db: db}
}

func (r *sortedRepo) Create(ctx context.Context, sorted *domain.SortedEvent) error {
	sorted.ID = uuid.New()
	now := time.Now().UTC()
	if sorted.Date.IsZero() {
		sorted.Date = now
	}
	sorted.CreatedAt = now
	sorted.UpdatedAt = now

	query := `INSERT INTO sorted_waste (id, intake_id, category, weight, date, operator_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		sorted.ID, sorted.IntakeID, sorted.Category, sorted.Weight,
		sorted.Date, sorted.OperatorID, sorted.Notes, sorted.CreatedAt, sorted.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sortedRepo.Create: %w", err)
	}
	return nil
}

func (r *sortedRepo) ListByIntake(ctx context.Context, intakeID uuid.UUID) ([]domain.SortedEvent, error) {
	sorted := []domain.SortedEvent{}
	err := r.db.SelectContext(ctx, &sorted,
		"SELECT * FROM sorted_waste WHERE intake_id = $1 ORDER BY date DESC", intakeID)
	if err != nil {
		return nil, fmt.Errorf("sortedRepo.ListByIntake: %w", err)
	}
	return sorted, nil
}
