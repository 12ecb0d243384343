package services

import (
	"context"

	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		GSTNo:     req.GSTNo,
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

// ListCustomers returns every customer, or just one company's when companyID > 0.
func (s *CustomerService) ListCustomers(ctx context.Context, companyID int) ([]*models.Customer, error) {
	if companyID > 0 {
		return s.Repo.ListByCompany(ctx, companyID)
	}
	return s.Repo.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		GSTNo:   req.GSTNo,
	}

	if err := s.Repo.Update(ctx, id, customer); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
