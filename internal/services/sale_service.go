package services

import (
	"context"
	"errors"
	"time"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/metrics"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/timeutil"
)

// saleTimeout bounds the whole sale transaction so a stuck lock cannot
// hold the HTTP worker forever.
const saleTimeout = 10 * time.Second

type SaleService struct {
	Repo *repositories.SaleRepository
}

func NewSaleService(repo *repositories.SaleRepository) *SaleService {
	return &SaleService{Repo: repo}
}

// CreateSale validates the cart, recomputes the totals server-side and
// runs the transactional workflow: invoice number, header, items, stock
// decrements and audit rows all commit or roll back together.
func (s *SaleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleWithDetails, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	saleDate, err := timeutil.ParseDate(req.SaleDate)
	if err != nil {
		return nil, &ValidationError{Problems: []string{"sale_date must be YYYY-MM-DD"}}
	}

	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentCompleted
	}

	total, final := req.Totals()
	sale := &models.Sale{
		CompanyID:     req.CompanyID,
		CustomerID:    req.CustomerID,
		SaleDate:      saleDate,
		TotalAmount:   total,
		Discount:      req.Discount,
		TaxAmount:     req.TaxAmount,
		FinalAmount:   final,
		PaymentStatus: status,
		Notes:         req.Notes,
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, models.SaleItem{
			BookID:       line.BookID,
			Quantity:     line.Quantity,
			PricePerUnit: line.PricePerUnit,
			TotalPrice:   float64(line.Quantity) * line.PricePerUnit,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, saleTimeout)
	defer cancel()

	if err := s.Repo.Create(ctx, sale, items); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
		}
		return nil, err
	}
	metrics.SalesTotal.Inc()
	cache.InvalidateCompanyReports(ctx, sale.CompanyID)

	return s.Repo.GetWithDetails(ctx, sale.ID)
}

func (s *SaleService) GetSale(ctx context.Context, id int) (*models.SaleWithDetails, error) {
	return s.Repo.GetWithDetails(ctx, id)
}

func (s *SaleService) ListSales(ctx context.Context, companyID int) ([]*models.Sale, error) {
	if companyID <= 0 {
		return nil, &ValidationError{Problems: []string{"company_id parameter is required"}}
	}
	return s.Repo.ListByCompany(ctx, companyID)
}
