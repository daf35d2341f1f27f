package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

// CreateIntakeInput is the DTO for recording a waste delivery.
type CreateIntakeInput struct {
	MRFID     string     `json:"mrf_id" binding:"required"`
	VehicleID string     `json:"vehicle_id" binding:"required"`
	Weight    float64    `json:"weight" binding:"required,gte=0"`
	Date      *time.Time `json:"date"`
	Notes     string     `json:"notes"`
}

// CreateSortedInput is the DTO for recording sorted material.
type CreateSortedInput struct {
	IntakeID uuid.UUID  `json:"intake_id" binding:"required"`
	Category string     `json:"category" binding:"required"`
	Weight   float64    `json:"weight" binding:"required,gte=0"`
	Date     *time.Time `json:"date"`
	Notes    string     `json:"notes"`
}

// CreateCategoryInput is the DTO for adding a catalog category.
type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

// WasteService covers the intake and sorting write path plus the
// category catalog.
type WasteService interface {
	CreateIntake(ctx context.Context, operatorID uuid.UUID, input CreateIntakeInput) (*domain.IntakeEvent, error)
	ListIntake(ctx context.Context, mrfID string, start, end *time.Time) ([]domain.IntakeEvent, error)
	CreateSorted(ctx context.Context, operatorID uuid.UUID, input CreateSortedInput) (*domain.SortedEvent, error)
	ListSorted(ctx context.Context, intakeID uuid.UUID) ([]domain.SortedEvent, error)
	ListCategories(ctx context.Context) ([]domain.WasteCategory, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.WasteCategory, error)
}

type wasteService struct {
	intakeRepo   port.IntakeRepository
	sortedRepo   port.SortedRepository
	categoryRepo port.CategoryRepository
}

// NewWasteService creates a new WasteService implementation.
func NewWasteService(
	intakeRepo port.IntakeRepository,
	sortedRepo port.SortedRepository,
	categoryRepo port.CategoryRepository,
) WasteService {
	return &wasteService{
		intakeRepo:   intakeRepo,
		sortedRepo:   sortedRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *wasteService) CreateIntake(ctx context.Context, operatorID uuid.UUID, input CreateIntakeInput) (*domain.IntakeEvent, error) {
	intake := &domain.IntakeEvent{
		MRFID:      input.MRFID,
		VehicleID:  input.VehicleID,
		Weight:     input.Weight,
		OperatorID: operatorID,
		Notes:      input.Notes,
	}
	if input.Date != nil {
		intake.Date = *input.Date
	}

	if err := s.intakeRepo.Create(ctx, intake); err != nil {
		return nil, err
	}
	return intake, nil
}

func (s *wasteService) ListIntake(ctx context.Context, mrfID string, start, end *time.Time) ([]domain.IntakeEvent, error) {
	return s.intakeRepo.ListByFacility(ctx, mrfID, start, end)
}

// CreateSorted verifies the referenced intake exists before writing; the
// reporting core relies on this check and never re-validates references.
func (s *wasteService) CreateSorted(ctx context.Context, operatorID uuid.UUID, input CreateSortedInput) (*domain.SortedEvent, error) {
	if _, err := s.intakeRepo.GetByID(ctx, input.IntakeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrIntakeNotFound
		}
		return nil, fmt.Errorf("waste.CreateSorted: %w", err)
	}

	sorted := &domain.SortedEvent{
		IntakeID:   input.IntakeID,
		Category:   input.Category,
		Weight:     input.Weight,
		OperatorID: operatorID,
		Notes:      input.Notes,
	}
	if input.Date != nil {
		sorted.Date = *input.Date
	}

	if err := s.sortedRepo.Create(ctx, sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

func (s *wasteService) ListSorted(ctx context.Context, intakeID uuid.UUID) ([]domain.SortedEvent, error) {
	return s.sortedRepo.ListByIntake(ctx, intakeID)
}

func (s *wasteService) ListCategories(ctx context.Context) ([]domain.WasteCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *wasteService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.WasteCategory, error) {
	category := &domain.WasteCategory{
		Name:        input.Name,
		Description: input.Description,
		UnitPrice:   input.UnitPrice,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
