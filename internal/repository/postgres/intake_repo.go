package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

type intakeRepo struct {
	db *sqlx.DB
}

// NewIntakeRepo creates a new PostgreSQL-backed IntakeRepository.
func NewIntakeRepo(db *sqlx.DB) port.IntakeRepository {
	return &intakeRepo{db: db}
}

func (r *intakeRepo) Create(ctx context.Context, intake *domain.IntakeEvent) error {
	intake.ID = uuid.New()
	now := time.Now().UTC()
	if intake.Date.IsZero() {
		intake.Date = now
	}
	intake.CreatedAt = now
	intake.UpdatedAt = now

	query := `INSERT INTO waste_intake (id, mrf_id, vehicle_id, weight, date, operator_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		intake.ID, intake.MRFID, intake.VehicleID, intake.Weight,
		intake.Date, intake.OperatorID, intake.Notes, intake.CreatedAt, intake.UpdatedAt)
	if err != nil {
		return fmt.Errorf("intakeRepo.Create: %w", err)
	}
	return nil
}

func (r *intakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeEvent, error) {
	var intake domain.IntakeEvent
	err := r.db.GetContext(ctx, &intake, "SELECT * FROM waste_intake WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("intakeRepo.GetByID: %w", err)
	}
	return &intake, nil
}

func (r *intakeRepo) ListByFacility(ctx context.Context, mrfID string, start, end *time.Time) ([]domain.IntakeEvent, error) {
	query := "SELECT * FROM waste_intake WHERE mrf_id = $1"
	args := []interface{}{mrfID}
	if start != nil && end != nil {
		query += " AND date >= $2 AND date <= $3"
		args = append(args, *start, *end)
	}
	query += " ORDER BY date DESC"

	intakes := []domain.IntakeEvent{}
	if err := r.db.SelectContext(ctx, &intakes, query, args...); err != nil {
		return nil, fmt.Errorf("intakeRepo.ListByFacility: %w", err)
	}
	return intakes, nil
}
