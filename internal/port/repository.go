package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrftrack/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, mrfID string, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

// IntakeRepository is the write path for intake events.
type IntakeRepository interface {
	Create(ctx context.Context, intake *domain.IntakeEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeEvent, error)
	ListByFacility(ctx context.Context, mrfID string, start, end *time.Time) ([]domain.IntakeEvent, error)
}

// SortedRepository is the write path for sorted-waste events.
type SortedRepository interface {
	Create(ctx context.Context, sorted *domain.SortedEvent) error
	ListByIntake(ctx context.Context, intakeID uuid.UUID) ([]domain.SortedEvent, error)
}

// SaleRepository is the write path for sale events.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.SaleEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SaleEvent, error)
	List(ctx context.Context, mrfID string, start, end *time.Time, category string) ([]domain.SaleEvent, error)
	Update(ctx context.Context, sale *domain.SaleEvent) error
}

// CategoryRepository defines the contract for the waste category catalog.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.WasteCategory) error
	List(ctx context.Context) ([]domain.WasteCategory, error)
}
