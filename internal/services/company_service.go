package services

import (
	"context"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
)

type CompanyService struct {
	Repo *repositories.CompanyRepository
}

func NewCompanyService(repo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:           req.Name,
		RegistrationNo: req.RegistrationNo,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		GSTNo:          req.GSTNo,
	}

	if err := s.Repo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int) (*models.Company, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.Repo.List(ctx)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id int, req *models.UpdateCompanyRequest) (*models.Company, error) {
	if err := validationError(req.Validate()); err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:             id,
		Name:           req.Name,
		RegistrationNo: req.RegistrationNo,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		GSTNo:          req.GSTNo,
	}

	if err := s.Repo.Update(ctx, id, company); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

// DeleteCompany removes the company and everything it owns. The cascade
// runs in one transaction inside the repository.
func (s *CompanyService) DeleteCompany(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateAllReports(ctx)
	return nil
}
