package timesheet

import (
	"context"
)

// TimesheetService exposes the computation core to the HTTP layer and to the
// report builder. Every call is stateless: nothing is cached or memoized, the
// caller re-invokes instead of patching a previous result.
type TimesheetService interface {
	// ComputeDaily pairs and aggregates one employee's punches for one
	// calendar day (YYYY-MM-DD in the reference timezone).
	ComputeDaily(ctx context.Context, employeeID, day string, cfg Config) (DaySummary, error)

	// ComputeMonthly runs the daily computation over every calendar day of the
	// month and folds totals and the running time-bank balance.
	ComputeMonthly(ctx context.Context, employeeID string, year, month int, cfg Config) (MonthSummary, error)

	// ComputeMonthlyBatch runs ComputeMonthly per employee with bounded
	// concurrency. Fail-soft: a failing employee gets an Err in its BatchItem,
	// completed peers keep their summaries.
	ComputeMonthlyBatch(ctx context.Context, employeeIDs []string, year, month int, cfg Config) ([]BatchItem, error)
}
