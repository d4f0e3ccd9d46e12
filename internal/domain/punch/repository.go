package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch records. Methods that read
// take the company scope explicitly to keep tenants isolated.
type PunchRepository interface {
	Create(ctx context.Context, newPunch Punch) (Punch, error)
	GetByID(ctx context.Context, id string, companyID string) (Punch, error)
	List(ctx context.Context, filter ListFilter) ([]Punch, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
	LastOfDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*Punch, error)
	Delete(ctx context.Context, id string, companyID string) error
}
