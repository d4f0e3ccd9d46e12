package punch

import "context"

type PunchService interface {
	Clock(ctx context.Context, req ClockRequest) (PunchResponse, error)
	CreateManual(ctx context.Context, req CreateManualRequest) (PunchResponse, error)
	GetByID(ctx context.Context, id string, companyID string) (PunchResponse, error)
	List(ctx context.Context, companyID string, employeeID *string, from, to, cursor string, limit int) (ListResponse, error)
	Delete(ctx context.Context, id string, companyID string) error
}
