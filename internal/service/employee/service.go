package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// ListByCompany implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, found := range employees {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return toResponse(found), nil
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		CompanyID:       req.CompanyID,
		FullName:        req.FullName,
		Position:        req.Position,
		HiringRegime:    employee.HiringRegime(req.HiringRegime),
		ContractMinutes: req.ContractMinutes,
		PINHash:         string(pinHash),
		Active:          true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toResponse(created), nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	var pinHash *string
	if req.PIN != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash pin: %w", err)
		}
		s := string(hashed)
		pinHash = &s
	}

	if err := e.EmployeeRepository.Update(ctx, id, req, pinHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete implements employee.EmployeeService. Employees are deactivated, not
// removed, so historical punches keep their owner.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// VerifyPIN implements employee.EmployeeService.
func (e *EmployeeServiceImpl) VerifyPIN(ctx context.Context, id string, pin string) error {
	found, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee by ID: %w", err)
	}
	if !found.Active {
		return employee.ErrEmployeeInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PINHash), []byte(pin)); err != nil {
		return employee.ErrPINMismatch
	}
	return nil
}

func toResponse(found employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              found.ID,
		CompanyID:       found.CompanyID,
		FullName:        found.FullName,
		Position:        found.Position,
		HiringRegime:    string(found.HiringRegime),
		ContractMinutes: found.ContractMinutes,
		Active:          found.Active,
		CompanyName:     found.CompanyName,
		CreatedAt:       found.CreatedAt,
		UpdatedAt:       found.UpdatedAt,
	}
}
