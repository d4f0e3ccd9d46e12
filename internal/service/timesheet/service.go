package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"golang.org/x/sync/errgroup"
)

// Years accepted by the query operations. Anything outside is rejected
// before any punch is fetched.
const (
	minYear = 2000
	maxYear = 2100
)

type TimesheetServiceImpl struct {
	punches timesheet.PunchSource
	loc     *time.Location

	// batchLimit bounds in-flight per-employee computations so the batch
	// variant does not overwhelm the punch store.
	batchLimit int
}

func NewTimesheetService(punches timesheet.PunchSource, loc *time.Location, batchLimit int) timesheet.TimesheetService {
	if loc == nil {
		loc = time.UTC
	}
	if batchLimit <= 0 {
		batchLimit = 8
	}
	return &TimesheetServiceImpl{
		punches:    punches,
		loc:        loc,
		batchLimit: batchLimit,
	}
}

// ComputeDaily implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ComputeDaily(ctx context.Context, employeeID, day string, cfg timesheet.Config) (timesheet.DaySummary, error) {
	parsed, err := time.ParseInLocation("2006-01-02", day, s.loc)
	if err != nil {
		return timesheet.DaySummary{}, fmt.Errorf("%w: %q is not a valid day", timesheet.ErrInvalidRange, day)
	}
	if parsed.Year() < minYear || parsed.Year() > maxYear {
		return timesheet.DaySummary{}, fmt.Errorf("%w: year %d out of range", timesheet.ErrInvalidRange, parsed.Year())
	}

	dayStart := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := s.punches.ListByEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return timesheet.DaySummary{}, fmt.Errorf("%w: %v", timesheet.ErrDataUnavailable, err)
	}

	return s.computeDay(dayStart, dayEnd, rows, cfg), nil
}

// ComputeMonthly implements timesheet.TimesheetService. The month's punches
// are fetched in one round trip and bucketed per calendar day; each day then
// runs the same pairing and aggregation as ComputeDaily.
func (s *TimesheetServiceImpl) ComputeMonthly(ctx context.Context, employeeID string, year, month int, cfg timesheet.Config) (timesheet.MonthSummary, error) {
	if month < 1 || month > 12 {
		return timesheet.MonthSummary{}, fmt.Errorf("%w: month %d", timesheet.ErrInvalidRange, month)
	}
	if year < minYear || year > maxYear {
		return timesheet.MonthSummary{}, fmt.Errorf("%w: year %d", timesheet.ErrInvalidRange, year)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.punches.ListByEmployeeBetween(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return timesheet.MonthSummary{}, fmt.Errorf("%w: %v", timesheet.ErrDataUnavailable, err)
	}

	byDay := make(map[string][]punch.Punch, len(rows))
	for _, row := range rows {
		key := row.PunchedAt.In(s.loc).Format("2006-01-02")
		byDay[key] = append(byDay[key], row)
	}

	summary := timesheet.MonthSummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}
	for dayStart := monthStart; dayStart.Before(monthEnd); dayStart = dayStart.AddDate(0, 0, 1) {
		dayEnd := dayStart.AddDate(0, 0, 1)
		day := s.computeDay(dayStart, dayEnd, byDay[dayStart.Format("2006-01-02")], cfg)
		foldMonth(&summary, day)
	}
	return summary, nil
}

// ComputeMonthlyBatch implements timesheet.TimesheetService. Employees are
// computed independently with bounded concurrency; a failure lands in that
// employee's BatchItem and never aborts completed peers.
func (s *TimesheetServiceImpl) ComputeMonthlyBatch(ctx context.Context, employeeIDs []string, year, month int, cfg timesheet.Config) ([]timesheet.BatchItem, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", timesheet.ErrInvalidRange, month)
	}
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("%w: year %d", timesheet.ErrInvalidRange, year)
	}

	results := make([]timesheet.BatchItem, len(employeeIDs))

	g := new(errgroup.Group)
	g.SetLimit(s.batchLimit)
	for i, id := range employeeIDs {
		i, id := i, id
		g.Go(func() error {
			summary, err := s.ComputeMonthly(ctx, id, year, month, cfg)
			results[i] = timesheet.BatchItem{
				EmployeeID: id,
				Summary:    summary,
				Err:        err,
			}
			// Fail-soft: the error stays in the item.
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// computeDay runs normalizer → pairer → aggregator for one calendar day.
func (s *TimesheetServiceImpl) computeDay(dayStart, dayEnd time.Time, rows []punch.Punch, cfg timesheet.Config) timesheet.DaySummary {
	events := normalizeDay(rows, dayStart, dayEnd, s.loc)
	pairs, incomplete := pairDay(events, cfg.Pairing)
	return summarizeDay(dayStart.Format("2006-01-02"), events, pairs, incomplete, cfg)
}
