package employee

import (
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"empresa_id"`
	FullName        string    `json:"nome"`
	Position        *string   `json:"cargo,omitempty"`
	HiringRegime    string    `json:"regime_contratacao"`
	ContractMinutes int       `json:"carga_horaria_minutos"`
	Active          bool      `json:"ativo"`
	CompanyName     string    `json:"empresa_nome,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	CompanyID       string  `json:"empresa_id"`
	FullName        string  `json:"nome"`
	Position        *string `json:"cargo,omitempty"`
	HiringRegime    string  `json:"regime_contratacao"`
	ContractMinutes int     `json:"carga_horaria_minutos"`
	PIN             string  `json:"pin"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "empresa_id",
			Message: "empresa_id must be a valid uuid",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nome",
			Message: "nome is required",
		})
	}
	if !HiringRegime(r.HiringRegime).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "regime_contratacao",
			Message: "regime_contratacao must be one of: clt, pj, estagio, temporario",
		})
	}
	if r.ContractMinutes <= 0 || r.ContractMinutes > 12*60 {
		errs = append(errs, validator.ValidationError{
			Field:   "carga_horaria_minutos",
			Message: "carga_horaria_minutos must be between 1 and 720 minutes",
		})
	}
	if len(r.PIN) < 4 || len(r.PIN) > 8 || !validator.IsNumeric(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName        *string `json:"nome,omitempty"`
	Position        *string `json:"cargo,omitempty"`
	HiringRegime    *string `json:"regime_contratacao,omitempty"`
	ContractMinutes *int    `json:"carga_horaria_minutos,omitempty"`
	PIN             *string `json:"pin,omitempty"`
	Active          *bool   `json:"ativo,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nome",
			Message: "nome cannot be empty",
		})
	}
	if r.HiringRegime != nil && !HiringRegime(*r.HiringRegime).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "regime_contratacao",
			Message: "regime_contratacao must be one of: clt, pj, estagio, temporario",
		})
	}
	if r.ContractMinutes != nil && (*r.ContractMinutes <= 0 || *r.ContractMinutes > 12*60) {
		errs = append(errs, validator.ValidationError{
			Field:   "carga_horaria_minutos",
			Message: "carga_horaria_minutos must be between 1 and 720 minutes",
		})
	}
	if r.PIN != nil && (len(*r.PIN) < 4 || len(*r.PIN) > 8 || !validator.IsNumeric(*r.PIN)) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
