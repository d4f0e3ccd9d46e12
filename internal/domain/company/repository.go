package company

import "context"

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByCNPJ(ctx context.Context, cnpjNorm string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByCNPJ(ctx context.Context, cnpjNorm string) (bool, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id string) error
}
