package services

import (
	"context"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
)

type BookService struct {
	Repo      *repositories.BookRepository
	Movements *repositories.StockMovementRepository
}

func NewBookService(repo *repositories.BookRepository, movements *repositories.StockMovementRepository) *BookService {
	return &BookService{Repo: repo, Movements: movements}
}

func (s *BookService) CreateBook(ctx context.Context, req *models.CreateBookRequest) (*models.Book, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = "English"
	}

	book := &models.Book{
		CompanyID:     req.CompanyID,
		Name:          req.Name,
		Author:        req.Author,
		Category:      req.Category,
		Language:      language,
		ISBN:          req.ISBN,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQuantity: req.StockQuantity,
	}

	if err := s.Repo.Create(ctx, book); err != nil {
		return nil, err
	}
	cache.InvalidateCompanyReports(ctx, book.CompanyID)

	return book, nil
}

func (s *BookService) GetBook(ctx context.Context, id int) (*models.Book, error) {
	return s.Repo.Get(ctx, id)
}

// ListBooks returns every book, or just one company's when companyID > 0.
func (s *BookService) ListBooks(ctx context.Context, companyID int) ([]*models.Book, error) {
	if companyID > 0 {
		return s.Repo.ListByCompany(ctx, companyID)
	}
	return s.Repo.List(ctx)
}

func (s *BookService) UpdateBook(ctx context.Context, id int, req *models.UpdateBookRequest) (*models.Book, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	book := &models.Book{
		ID:            id,
		Name:          req.Name,
		Author:        req.Author,
		Category:      req.Category,
		Language:      req.Language,
		ISBN:          req.ISBN,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
	}

	if err := s.Repo.Update(ctx, id, book); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.InvalidateCompanyReports(ctx, updated.CompanyID)
	return updated, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id int) error {
	book, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCompanyReports(ctx, book.CompanyID)
	return nil
}

// AdjustStock applies a manual signed correction to a book's stock and
// returns the book as it stands afterwards.
func (s *BookService) AdjustStock(ctx context.Context, id int, req *models.AdjustStockRequest) (*models.Book, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}
	if err := s.Repo.AdjustStock(ctx, id, req.Delta, req.Notes); err != nil {
		return nil, err
	}
	return s.refreshed(ctx, id)
}

// MarkDamaged moves available units into the damaged counter.
func (s *BookService) MarkDamaged(ctx context.Context, id int, req *models.MarkStockRequest) (*models.Book, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}
	if err := s.Repo.MarkDamaged(ctx, id, req.Quantity, req.Notes); err != nil {
		return nil, err
	}
	return s.refreshed(ctx, id)
}

// MarkLost moves available units into the lost counter.
func (s *BookService) MarkLost(ctx context.Context, id int, req *models.MarkStockRequest) (*models.Book, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}
	if err := s.Repo.MarkLost(ctx, id, req.Quantity, req.Notes); err != nil {
		return nil, err
	}
	return s.refreshed(ctx, id)
}

// ListMovements returns the book's audit trail, newest first.
func (s *BookService) ListMovements(ctx context.Context, id int) ([]*models.StockMovement, error) {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.Movements.ListByBook(ctx, id)
}

func (s *BookService) refreshed(ctx context.Context, id int) (*models.Book, error) {
	book, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.InvalidateCompanyReports(ctx, book.CompanyID)
	return book, nil
}
