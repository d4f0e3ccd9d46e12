package timesheet

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// DailyRequest asks for one employee/day computation.
type DailyRequest struct {
	EmployeeID string `json:"employee_id"`
	Day        string `json:"day"` // YYYY-MM-DD
}

func (r *DailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Day); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyRequest asks for one employee/month computation.
type MonthlyRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BatchRequest asks for one MonthSummary per employee id.
type BatchRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Year        int      `json:"year"`
	Month       int      `json:"month"`
}

func (r *BatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee_id is required",
		})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: "employee ids must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
