package company

import (
	"context"
)

// CompanyRepository defines data access methods for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context) ([]Company, error)
}
