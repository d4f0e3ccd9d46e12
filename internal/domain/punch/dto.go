package punch

import (
	"mime/multipart"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

type PunchResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"empresa_id"`
	EmployeeID string    `json:"colaborador_id"`
	Kind       string    `json:"tipo"`
	PunchedAt  time.Time `json:"registrado_em"`
	PhotoURL   *string   `json:"foto_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	EmployeeName string `json:"colaborador_nome,omitempty"`
	CompanyName  string `json:"empresa_nome,omitempty"`
}

// ClockRequest is the kiosk flow: the employee identifies with a PIN and the
// punch kind is inferred from the last open mark of the day.
type ClockRequest struct {
	EmployeeID string                `json:"colaborador_id"`
	PIN        string                `json:"pin"`
	Kind       string                `json:"tipo,omitempty"`
	PhotoPath  *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "colaborador_id",
			Message: "colaborador_id must be a valid uuid",
		})
	}
	if len(r.PIN) < 4 || len(r.PIN) > 8 || !validator.IsNumeric(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 8 digits",
		})
	}
	if r.Kind != "" && !Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo must be entrada or saida",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateManualRequest records a punch on behalf of an employee (admin flow).
type CreateManualRequest struct {
	CompanyID  string `json:"empresa_id"`
	EmployeeID string `json:"colaborador_id"`
	Kind       string `json:"tipo"`
	PunchedAt  string `json:"registrado_em"`
}

func (r *CreateManualRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "colaborador_id",
			Message: "colaborador_id must be a valid uuid",
		})
	}
	if !Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo must be entrada or saida",
		})
	}
	if _, ok := validator.IsValidDateTime(r.PunchedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "registrado_em",
			Message: "registrado_em must be in format YYYY-MM-DD HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter pages through punches with a keyset cursor ordered by
// (punched_at, id) descending.
type ListFilter struct {
	CompanyID  string
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Cursor     *Cursor
	Limit      int
}

type Cursor struct {
	PunchedAt time.Time `json:"registrado_em"`
	ID        string    `json:"id"`
}

type ListResponse struct {
	Items      []PunchResponse `json:"items"`
	NextCursor *string         `json:"next_cursor,omitempty"`
}
