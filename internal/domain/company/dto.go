package company

import (
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Address   *string   `json:"endereco,omitempty"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name    string  `json:"nome"`
	CNPJ    string  `json:"cnpj"`
	Address *string `json:"endereco,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "nome",
			Message: "nome is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "nome",
			Message: "nome must not exceed 255 characters",
		})
	}
	if !validator.IsValidCNPJ(r.CNPJ) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnpj",
			Message: "cnpj is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	Name    *string `json:"nome,omitempty"`
	Address *string `json:"endereco,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "nome",
				Message: "nome cannot be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "nome",
				Message: "nome must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
