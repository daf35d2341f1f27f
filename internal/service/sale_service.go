package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrftrack/internal/aggregate"
	"mrftrack/internal/domain"
	"mrftrack/internal/port"
)

// CreateSaleInput is the DTO for recording a sale. The total amount is
// always recomputed server-side from weight and unit price.
type CreateSaleInput struct {
	MRFID        string     `json:"mrf_id" binding:"required"`
	Category     string     `json:"category" binding:"required"`
	Weight       float64    `json:"weight" binding:"required,gte=0"`
	UnitPrice    float64    `json:"unit_price" binding:"required,gte=0"`
	BuyerName    string     `json:"buyer_name" binding:"required"`
	BuyerContact string     `json:"buyer_contact"`
	Date         *time.Time `json:"date"`
	Notes        string     `json:"notes"`
}

// UpdateSaleInput is the DTO for correcting a sale record.
type UpdateSaleInput struct {
	Category     *string  `json:"category"`
	Weight       *float64 `json:"weight"`
	UnitPrice    *float64 `json:"unit_price"`
	BuyerName    *string  `json:"buyer_name"`
	BuyerContact *string  `json:"buyer_contact"`
	Notes        *string  `json:"notes"`
}

// SaleService covers the sales write path and the per-facility summary.
type SaleService interface {
	Create(ctx context.Context, operatorID uuid.UUID, input CreateSaleInput) (*domain.SaleEvent, error)
	List(ctx context.Context, mrfID string, start, end *time.Time, category string) ([]domain.SaleEvent, error)
	Update(ctx context.Context, saleID uuid.UUID, input UpdateSaleInput) (*domain.SaleEvent, error)
	Summary(ctx context.Context, mrfID string, start, end *time.Time) (*domain.SalesSummary, error)
}

type saleService struct {
	repo port.SaleRepository
}

// NewSaleService creates a new SaleService implementation.
func NewSaleService(repo port.SaleRepository) SaleService {
	return &saleService{repo: repo}
}

func (s *saleService) Create(ctx context.Context, operatorID uuid.UUID, input CreateSaleInput) (*domain.SaleEvent, error) {
	sale := &domain.SaleEvent{
		MRFID:        input.MRFID,
		Category:     input.Category,
		Weight:       input.Weight,
		UnitPrice:    input.UnitPrice,
		TotalAmount:  input.Weight * input.UnitPrice,
		BuyerName:    input.BuyerName,
		BuyerContact: input.BuyerContact,
		OperatorID:   operatorID,
		Notes:        input.Notes,
	}
	if input.Date != nil {
		sale.Date = *input.Date
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) List(ctx context.Context, mrfID string, start, end *time.Time, category string) ([]domain.SaleEvent, error) {
	return s.repo.List(ctx, mrfID, start, end, category)
}

func (s *saleService) Update(ctx context.Context, saleID uuid.UUID, input UpdateSaleInput) (*domain.SaleEvent, error) {
	sale, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		sale.Category = *input.Category
	}
	if input.Weight != nil {
		sale.Weight = *input.Weight
	}
	if input.UnitPrice != nil {
		sale.UnitPrice = *input.UnitPrice
	}
	if input.BuyerName != nil {
		sale.BuyerName = *input.BuyerName
	}
	if input.BuyerContact != nil {
		sale.BuyerContact = *input.BuyerContact
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}
	sale.TotalAmount = sale.Weight * sale.UnitPrice

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Summary returns the category-wise sales rollup for one facility plus
// overall totals across all categories.
func (s *saleService) Summary(ctx context.Context, mrfID string, start, end *time.Time) (*domain.SalesSummary, error) {
	sales, err := s.repo.List(ctx, mrfID, start, end, "")
	if err != nil {
		return nil, err
	}

	categoryWise := make(map[string]domain.SalesAggregate)
	for category, row := range aggregate.ByKey(sales, func(e domain.SaleEvent) string { return e.Category }, saleWeight, saleAmount) {
		categoryWise[category] = domain.SalesAggregate{TotalWeight: row.TotalWeight, TotalAmount: row.TotalAmount, Count: row.Count}
	}

	overall := aggregate.Total(sales, saleWeight, saleAmount)

	return &domain.SalesSummary{
		CategoryWise: categoryWise,
		Overall: domain.SalesOverall{
			TotalWeight:       overall.TotalWeight,
			TotalAmount:       overall.TotalAmount,
			TotalTransactions: overall.Count,
		},
	}, nil
}
