package employee

import "context"

type EmployeeRepository interface {
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	ListActiveIDsByCompany(ctx context.Context, companyID string) ([]string, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, pinHash *string) error
	Delete(ctx context.Context, id string) error
}
