package company

import (
	"context"
)

// CompanyService defines business logic for companies
type CompanyService interface {
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetCompany(ctx context.Context, id string) (CompanyResponse, error)
	ListCompanies(ctx context.Context) ([]CompanyResponse, error)
}
