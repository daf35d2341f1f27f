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

type saleRepo struct {
	db *sqlx.DB
}

// NewSaleRepo creates a new PostgreSQL-backed SaleRepository.
func NewSaleRepo(db *sqlx.DB) port.SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, sale *domain.SaleEvent) error {
	sale.ID = uuid.New()
	now := time.Now().UTC()
	if sale.Date.IsZero() {
		sale.Date = now
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now

	query := `INSERT INTO waste_sales (id, mrf_id, category, weight, unit_price, total_amount,
		buyer_name, buyer_contact, date, operator_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		sale.ID, sale.MRFID, sale.Category, sale.Weight, sale.UnitPrice, sale.TotalAmount,
		sale.BuyerName, sale.BuyerContact, sale.Date, sale.OperatorID, sale.Notes,
		sale.CreatedAt, sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saleRepo.Create: %w", err)
	}
	return nil
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleEvent, error) {
	var sale domain.SaleEvent
	err := r.db.GetContext(ctx, &sale, "SELECT * FROM waste_sales WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("saleRepo.GetByID: %w", err)
	}
	return &sale, nil
}

func (r *saleRepo) List(ctx context.Context, mrfID string, start, end *time.Time, category string) ([]domain.SaleEvent, error) {
	query := "SELECT * FROM waste_sales WHERE mrf_id = $1"
	args := []interface{}{mrfID}
	if start != nil && end != nil {
		query += fmt.Sprintf(" AND date >= $%d AND date <= $%d", len(args)+1, len(args)+2)
		args = append(args, *start, *end)
	}
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", len(args)+1)
		args = append(args, category)
	}
	query += " ORDER BY date DESC"

	sales := []domain.SaleEvent{}
	if err := r.db.SelectContext(ctx, &sales, query, args...); err != nil {
		return nil, fmt.Errorf("saleRepo.List: %w", err)
	}
	return sales, nil
}

func (r *saleRepo) Update(ctx context.Context, sale *domain.SaleEvent) error {
	sale.UpdatedAt = time.Now().UTC()
	query := `UPDATE waste_sales SET category = $1, weight = $2, unit_price = $3, total_amount = $4,
		buyer_name = $5, buyer_contact = $6, notes = $7, updated_at = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		sale.Category, sale.Weight, sale.UnitPrice, sale.TotalAmount,
		sale.BuyerName, sale.BuyerContact, sale.Notes, sale.UpdatedAt, sale.ID)
	if err != nil {
		return fmt.Errorf("saleRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
