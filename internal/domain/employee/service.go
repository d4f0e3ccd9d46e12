package employee

import "context"

type EmployeeService interface {
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	VerifyPIN(ctx context.Context, id string, pin string) error
}
