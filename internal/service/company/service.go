package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepository}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, found := range companies {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	cnpjNorm := validator.NormalizeCNPJ(req.CNPJ)
	exists, err := c.CompanyRepository.ExistsByCNPJ(ctx, cnpjNorm)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check cnpj: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyCNPJExists
	}

	created, err := c.CompanyRepository.Create(ctx, company.Company{
		Name:     req.Name,
		CNPJ:     req.CNPJ,
		CNPJNorm: cnpjNorm,
		Address:  req.Address,
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}
	return toResponse(created), nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	found, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return toResponse(found), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := c.CompanyRepository.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company: %w", err)
	}
	return nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := c.CompanyRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func toResponse(found company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        found.ID,
		Name:      found.Name,
		CNPJ:      found.CNPJ,
		Address:   found.Address,
		LogoURL:   found.LogoURL,
		CreatedAt: found.CreatedAt,
		UpdatedAt: found.UpdatedAt,
	}
}
