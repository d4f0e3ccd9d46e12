package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, cnpj, cnpj_norm, address, logo_url, created_at, updated_at
		FROM companies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var found company.Company
		if err := rows.Scan(&found.ID, &found.Name, &found.CNPJ, &found.CNPJNorm,
			&found.Address, &found.LogoURL, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, found)
	}
	return companies, rows.Err()
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, cnpj, cnpj_norm, address, logo_url, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.CNPJ, &found.CNPJNorm,
			&found.Address, &found.LogoURL, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return found, nil
}

// GetByCNPJ implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByCNPJ(ctx context.Context, cnpjNorm string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, cnpj, cnpj_norm, address, logo_url, created_at, updated_at
		FROM companies
		WHERE cnpj_norm = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, cnpjNorm).
		Scan(&found.ID, &found.Name, &found.CNPJ, &found.CNPJNorm,
			&found.Address, &found.LogoURL, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return found, nil
}

// ExistsByCNPJ implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsByCNPJ(ctx context.Context, cnpjNorm string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE cnpj_norm = $1)`, cnpjNorm).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name, cnpj, cnpj_norm, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, cnpj, cnpj_norm, address, logo_url, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, newCompany.Name, newCompany.CNPJ, newCompany.CNPJNorm, newCompany.Address).
		Scan(&created.ID, &created.Name, &created.CNPJ, &created.CNPJNorm,
			&created.Address, &created.LogoURL, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return company.Company{}, err
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for company update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update company with id %s: %w", id, err)
	}
	return nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM companies WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}
