package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/sse"
)

type TimesheetJobs struct {
	companyRepo  company.CompanyRepository
	employeeRepo employee.EmployeeRepository
	timesheets   timesheet.TimesheetService
	hub          *sse.Hub
	engineCfg    timesheet.Config
	loc          *time.Location
}

func NewTimesheetJobs(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	timesheets timesheet.TimesheetService,
	hub *sse.Hub,
	engineCfg timesheet.Config,
	loc *time.Location,
) *TimesheetJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &TimesheetJobs{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		timesheets:   timesheets,
		hub:          hub,
		engineCfg:    engineCfg,
		loc:          loc,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("scan_incomplete_days", 1*time.Hour, j.ScanIncompleteDays)
}

// ScanIncompleteDays recomputes yesterday for every active employee and
// notifies company dashboards about days left with an open pair.
func (j *TimesheetJobs) ScanIncompleteDays(ctx context.Context) error {
	// Only run in the first hour of the local day, once yesterday is closed.
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	yesterday := time.Now().In(j.loc).AddDate(0, 0, -1).Format("2006-01-02")
	slog.Info("Cron: scanning for incomplete days", "day", yesterday)

	companies, err := j.companyRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	flagged := 0
	for _, comp := range companies {
		ids, err := j.employeeRepo.ListActiveIDsByCompany(ctx, comp.ID)
		if err != nil {
			slog.Error("Cron: failed to list employees", "company_id", comp.ID, "error", err)
			continue
		}

		for _, employeeID := range ids {
			summary, err := j.timesheets.ComputeDaily(ctx, employeeID, yesterday, j.engineCfg)
			if err != nil {
				slog.Error("Cron: failed to compute day", "employee_id", employeeID, "day", yesterday, "error", err)
				continue
			}
			if summary.Status != timesheet.StatusIncompletePair {
				continue
			}

			flagged++
			j.hub.Publish(comp.ID, sse.Event{
				CompanyID: comp.ID,
				Event:     "timesheet.incomplete_day",
				Data: map[string]interface{}{
					"colaborador_id": employeeID,
					"data":           yesterday,
					"status":         string(summary.Status),
				},
			})
		}
	}

	slog.Info("Cron: incomplete day scan finished", "day", yesterday, "flagged", flagged)
	return nil
}
