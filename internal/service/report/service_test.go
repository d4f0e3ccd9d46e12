package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/company"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	timesheetservice "github.com/pontocerto/ponto-backend-go/internal/service/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	byID map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	found, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return found, nil
}

type stubCompanyRepo struct {
	company.CompanyRepository
	byID map[string]company.Company
}

func (s *stubCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	found, ok := s.byID[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return found, nil
}

type stubPunches struct {
	rows []punch.Punch
}

func (s *stubPunches) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range s.rows {
		if row.EmployeeID == employeeID && !row.PunchedAt.Before(from) && row.PunchedAt.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func punchAt(employeeID, stamp string, kind punch.Kind) punch.Punch {
	at, err := time.ParseInLocation("2006-01-02 15:04", stamp, testLoc)
	if err != nil {
		panic(err)
	}
	return punch.Punch{ID: stamp, CompanyID: "co-1", EmployeeID: employeeID, Kind: kind, PunchedAt: at}
}

func newTestReportService(punches *stubPunches) *ReportServiceImpl {
	position := "Analista"
	employees := &stubEmployeeRepo{byID: map[string]employee.Employee{
		"emp-1": {
			ID:              "emp-1",
			CompanyID:       "co-1",
			FullName:        "Maria Souza",
			Position:        &position,
			HiringRegime:    employee.HiringRegimeCLT,
			ContractMinutes: 480,
			Active:          true,
		},
		"emp-2": {
			ID:              "emp-2",
			CompanyID:       "co-1",
			FullName:        "João Lima",
			HiringRegime:    employee.HiringRegimeInternship,
			ContractMinutes: 360,
			Active:          true,
		},
	}}
	companies := &stubCompanyRepo{byID: map[string]company.Company{
		"co-1": {ID: "co-1", Name: "Acme Ltda", CNPJ: "11.222.333/0001-81"},
	}}
	engine := timesheetservice.NewTimesheetService(punches, testLoc, 4)
	return NewReportService(engine, employees, companies, timesheet.DefaultConfig(), testLoc).(*ReportServiceImpl)
}

func TestMonthlyDocument(t *testing.T) {
	punches := &stubPunches{rows: []punch.Punch{
		punchAt("emp-1", "2025-03-03 08:00", punch.KindEntrance),
		punchAt("emp-1", "2025-03-03 12:00", punch.KindExit),
		punchAt("emp-1", "2025-03-03 13:00", punch.KindEntrance),
		punchAt("emp-1", "2025-03-03 17:00", punch.KindExit),
		punchAt("emp-1", "2025-03-04 09:00", punch.KindEntrance),
	}}
	svc := newTestReportService(punches)

	doc, err := svc.MonthlyDocument(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltda", doc.CompanyName)
	assert.Equal(t, "11.222.333/0001-81", doc.CompanyCNPJ)
	assert.Equal(t, "Maria Souza", doc.EmployeeName)
	assert.Equal(t, "Analista", doc.Position)
	assert.Equal(t, "clt", doc.HiringRegime)
	assert.Equal(t, "2025-03", doc.Competence)
	require.Len(t, doc.Days, 31)

	// 2025-03-03: two pairs already excluding lunch, 480 worked.
	day3 := doc.Days[2]
	assert.Equal(t, "2025-03-03", day3.Date)
	assert.Equal(t, "segunda-feira", day3.Weekday)
	assert.Equal(t, []string{"08:00", "12:00", "13:00", "17:00"}, day3.Marks)
	assert.Equal(t, "08:00", day3.Worked)
	assert.Equal(t, "+00:00", day3.HourBankDay)
	assert.Equal(t, "OK", day3.StatusLabel)

	// 2025-03-04: dangling entrance.
	day4 := doc.Days[3]
	assert.Equal(t, "Par Incompleto", day4.StatusLabel)
	assert.Equal(t, "00:00", day4.Worked)

	// Empty day.
	assert.Equal(t, "Sem Registro", doc.Days[0].StatusLabel)

	assert.Equal(t, "08:00", doc.TotalWorked)
	assert.Equal(t, 1, doc.WorkedDays)
}

func TestMonthlyDocument_ContractMinutesOverrideExpected(t *testing.T) {
	// 360-minute workload, two pairs totalling 360: the day balances even
	// though the engine default expects 480.
	punches := &stubPunches{rows: []punch.Punch{
		punchAt("emp-2", "2025-03-03 08:00", punch.KindEntrance),
		punchAt("emp-2", "2025-03-03 11:00", punch.KindExit),
		punchAt("emp-2", "2025-03-03 12:00", punch.KindEntrance),
		punchAt("emp-2", "2025-03-03 15:00", punch.KindExit),
	}}
	svc := newTestReportService(punches)

	doc, err := svc.MonthlyDocument(context.Background(), "emp-2", 2025, 3)
	require.NoError(t, err)

	day3 := doc.Days[2]
	assert.Equal(t, "06:00", day3.Worked)
	assert.Equal(t, "+00:00", day3.HourBankDay)
	assert.Equal(t, "00:00", day3.Overtime)
	assert.Equal(t, "00:00", day3.Shortfall)
}

func TestExportCSV(t *testing.T) {
	punches := &stubPunches{rows: []punch.Punch{
		punchAt("emp-1", "2025-03-03 08:00", punch.KindEntrance),
		punchAt("emp-1", "2025-03-03 17:00", punch.KindExit),
	}}
	svc := newTestReportService(punches)

	raw, err := svc.ExportCSV(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)

	// Header + 31 days + footer.
	require.Len(t, records, 33)
	assert.Equal(t, exportHeader, records[0])

	day3 := records[3]
	assert.Equal(t, "2025-03-03", day3[0])
	assert.Equal(t, "08:00 17:00", day3[2])
	// 540 gross, single pair, 60 lunch deducted.
	assert.Equal(t, "08:00", day3[3])
	assert.Equal(t, "OK", day3[7])

	footer := records[32]
	assert.Equal(t, "total", footer[0])
	assert.Equal(t, "08:00", footer[3])
}

func TestExportXLSX(t *testing.T) {
	punches := &stubPunches{rows: []punch.Punch{
		punchAt("emp-1", "2025-03-03 08:00", punch.KindEntrance),
		punchAt("emp-1", "2025-03-03 17:00", punch.KindExit),
	}}
	svc := newTestReportService(punches)

	raw, err := svc.ExportXLSX(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	// XLSX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, raw[:2])
}
