package timesheet

import (
	"context"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
)

// PunchSource is the narrow view of punch storage the computation needs: all
// punches for one employee inside [from, to), no pagination truncation. The
// postgres punch repository satisfies it.
type PunchSource interface {
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error)
}
