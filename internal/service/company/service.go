package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmflow/hrm-backend-go/internal/domain/company"
	"github.com/hrmflow/hrm-backend-go/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepo,
	}
}

// CreateCompany implements company.CompanyService.
func (c *CompanyServiceImpl) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := c.CompanyRepository.Create(ctx, company.Company{Name: req.Name})
	if err != nil {
		if errors.Is(err, company.ErrNameExists) {
			return company.CompanyResponse{}, company.ErrNameExists
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	return company.CompanyResponse{ID: created.ID, Name: created.Name}, nil
}

// GetCompany implements company.CompanyService.
func (c *CompanyServiceImpl) GetCompany(ctx context.Context, id string) (company.CompanyResponse, error) {
	co, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}
	return company.CompanyResponse{ID: co.ID, Name: co.Name}, nil
}

// ListCompanies implements company.CompanyService.
func (c *CompanyServiceImpl) ListCompanies(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		responses = append(responses, company.CompanyResponse{ID: co.ID, Name: co.Name})
	}
	return responses, nil
}
