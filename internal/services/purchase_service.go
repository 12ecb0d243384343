package services

import (
	"context"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/timeutil"
)

type PurchaseService struct {
	Repo *repositories.PurchaseRepository
}

func NewPurchaseService(repo *repositories.PurchaseRepository) *PurchaseService {
	return &PurchaseService{Repo: repo}
}

// RecordPurchase stores the purchase and restocks the book atomically.
// The total is recomputed from quantity and unit price, never trusted
// from the request.
func (s *PurchaseService) RecordPurchase(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	purchaseDate, err := timeutil.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, &ValidationError{Problems: []string{"purchase_date must be YYYY-MM-DD"}}
	}

	purchase := &models.Purchase{
		CompanyID:    req.CompanyID,
		BookID:       req.BookID,
		SupplierName: req.SupplierName,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		TotalAmount:  req.TotalAmount(),
		PurchaseDate: purchaseDate,
		Notes:        req.Notes,
	}

	if err := s.Repo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	cache.InvalidateCompanyReports(ctx, purchase.CompanyID)

	return purchase, nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context, companyID int) ([]*models.Purchase, error) {
	if companyID <= 0 {
		return nil, &ValidationError{Problems: []string{"company_id parameter is required"}}
	}
	return s.Repo.ListByCompany(ctx, companyID)
}

// LatestPrice returns the unit price of the most recent purchase of the
// book, zero when it has never been purchased.
func (s *PurchaseService) LatestPrice(ctx context.Context, bookID int) (float64, error) {
	if bookID <= 0 {
		return 0, &ValidationError{Problems: []string{"book_id parameter is required"}}
	}
	return s.Repo.LatestPrice(ctx, bookID)
}
