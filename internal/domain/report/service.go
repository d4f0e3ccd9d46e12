package report

import "context"

type ReportService interface {
	// MonthlyDocument renders the full monthly timesheet for one employee.
	MonthlyDocument(ctx context.Context, employeeID string, year, month int) (TimesheetDocument, error)
	// ExportCSV renders the monthly timesheet as CSV bytes.
	ExportCSV(ctx context.Context, employeeID string, year, month int) ([]byte, error)
	// ExportXLSX renders the monthly timesheet as an Excel workbook.
	ExportXLSX(ctx context.Context, employeeID string, year, month int) ([]byte, error)
}
