package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/report"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

type ReportServiceImpl struct {
	timesheets timesheet.TimesheetService
	employees  employee.EmployeeRepository
	companies  company.CompanyRepository
	engineCfg  timesheet.Config
	loc        *time.Location
}

func NewReportService(
	timesheets timesheet.TimesheetService,
	employees employee.EmployeeRepository,
	companies company.CompanyRepository,
	engineCfg timesheet.Config,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		timesheets: timesheets,
		employees:  employees,
		companies:  companies,
		engineCfg:  engineCfg,
		loc:        loc,
	}
}

// MonthlyDocument implements report.ReportService.
func (r *ReportServiceImpl) MonthlyDocument(ctx context.Context, employeeID string, year, month int) (report.TimesheetDocument, error) {
	emp, err := r.employees.GetByID(ctx, employeeID)
	if err != nil {
		return report.TimesheetDocument{}, fmt.Errorf("failed to get employee: %w", err)
	}
	comp, err := r.companies.GetByID(ctx, emp.CompanyID)
	if err != nil {
		return report.TimesheetDocument{}, fmt.Errorf("failed to get company: %w", err)
	}

	cfg := r.engineCfg
	if emp.ContractMinutes > 0 {
		cfg.ExpectedMinutesPerDay = emp.ContractMinutes
	}

	summary, err := r.timesheets.ComputeMonthly(ctx, employeeID, year, month, cfg)
	if err != nil {
		return report.TimesheetDocument{}, err
	}

	return r.buildDocument(emp, comp, summary), nil
}

func (r *ReportServiceImpl) buildDocument(emp employee.Employee, comp company.Company, summary timesheet.MonthSummary) report.TimesheetDocument {
	doc := report.TimesheetDocument{
		CompanyName:      comp.Name,
		CompanyCNPJ:      comp.CNPJ,
		EmployeeName:     emp.FullName,
		HiringRegime:     string(emp.HiringRegime),
		Competence:       fmt.Sprintf("%04d-%02d", summary.Year, summary.Month),
		TotalWorked:      MinutesToHHMM(summary.TotalMinutes),
		TotalOvertime:    MinutesToHHMM(summary.TotalOvertimeMinutes),
		TotalShortfall:   MinutesToHHMM(summary.TotalShortfallMinutes),
		TotalAbsences:    MinutesToHHMM(summary.TotalAbsenceMinutes),
		HourBankFinal:    SignedHHMM(summary.BankBalanceMinutes),
		WorkedDays:       summary.WorkedDays,
		GeneratedAtLocal: time.Now().In(r.loc).Format("2006-01-02 15:04"),
	}
	if emp.Position != nil {
		doc.Position = *emp.Position
	}

	doc.Days = make([]report.DayRow, 0, len(summary.Days))
	for _, day := range summary.Days {
		row := report.DayRow{
			Date:        day.Day,
			Worked:      MinutesToHHMM(day.NetMinutes),
			Overtime:    MinutesToHHMM(day.OvertimeMinutes),
			Shortfall:   MinutesToHHMM(day.ShortfallMinutes),
			HourBankDay: SignedHHMM(day.BankMinutes),
			Status:      string(day.Status),
			StatusLabel: StatusLabel(day.Status),
		}
		if parsed, err := time.ParseInLocation("2006-01-02", day.Day, r.loc); err == nil {
			row.Weekday = weekdayLabels[parsed.Weekday()]
		}
		row.Marks = make([]string, 0, len(day.Marks))
		for _, mark := range day.Marks {
			row.Marks = append(row.Marks, mark.In(r.loc).Format("15:04"))
		}
		doc.Days = append(doc.Days, row)
	}
	return doc
}
