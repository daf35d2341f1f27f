package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

type categoryRepo struct {
	db *sqlx.DB
}

// NewCategoryRepo creates a new PostgreSQL-backed CategoryRepository.
func NewCategoryRepo(db *sqlx.DB) port.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.WasteCategory) error {
	category.ID = uuid.New()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	query := `INSERT INTO waste_categories (id, name, description, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Description, category.UnitPrice,
		category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("categoryRepo.Create: %w", err)
	}
	return nil
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.WasteCategory, error) {
	categories := []domain.WasteCategory{}
	err := r.db.SelectContext(ctx, &categories,
		"SELECT * FROM waste_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("categoryRepo.List: %w", err)
	}
	return categories, nil
}
