package response

import (
	"errors"
	"net/http"

	"github.com/pontocerto/ponto-backend-go/internal/domain/auth"
	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/photo"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontocerto/ponto-backend-go/internal/domain/user"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyCNPJExists):
		Conflict(w, "CNPJ already registered")
	case errors.Is(err, company.ErrInvalidCNPJ):
		BadRequest(w, "Invalid CNPJ", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrPINMismatch), errors.Is(err, employee.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrInvalidPunchKind):
		BadRequest(w, "Punch kind must be entrada or saida", nil)
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "An identical punch already exists")
	case errors.Is(err, punch.ErrInvalidCursor):
		BadRequest(w, "Invalid pagination cursor", nil)

	// Photo domain errors
	case errors.Is(err, photo.ErrPhotoNotFound):
		NotFound(w, "Photo not found")
	case errors.Is(err, photo.ErrUnsupportedType):
		BadRequest(w, "Unsupported photo content type", nil)
	case errors.Is(err, photo.ErrPhotoTooLarge):
		BadRequest(w, "Photo exceeds the maximum allowed size", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidRange):
		BadRequest(w, "Invalid date or period", nil)
	case errors.Is(err, timesheet.ErrDataUnavailable):
		ServiceUnavailable(w, "Punch data temporarily unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
