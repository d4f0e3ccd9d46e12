package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"data", "dia_semana", "batidas", "total_trabalhado",
	"horas_extras", "atrasos", "banco_horas_dia", "status",
}

// ExportCSV implements report.ReportService.
func (r *ReportServiceImpl) ExportCSV(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	doc, err := r.MonthlyDocument(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, day := range doc.Days {
		record := []string{
			day.Date,
			day.Weekday,
			strings.Join(day.Marks, " "),
			day.Worked,
			day.Overtime,
			day.Shortfall,
			day.HourBankDay,
			day.StatusLabel,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	if err := w.Write([]string{"total", "", "", doc.TotalWorked, doc.TotalOvertime, doc.TotalShortfall, doc.HourBankFinal, ""}); err != nil {
		return nil, fmt.Errorf("failed to write csv footer: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX implements report.ReportService.
func (r *ReportServiceImpl) ExportXLSX(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	doc, err := r.MonthlyDocument(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Espelho de Ponto"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Document header
	f.SetCellValue(sheet, "A1", doc.CompanyName)
	f.SetCellValue(sheet, "B1", doc.CompanyCNPJ)
	f.SetCellValue(sheet, "A2", doc.EmployeeName)
	f.SetCellValue(sheet, "B2", doc.Position)
	f.SetCellValue(sheet, "C2", doc.HiringRegime)
	f.SetCellValue(sheet, "A3", "Competência")
	f.SetCellValue(sheet, "B3", doc.Competence)

	// Table header
	headerRow := 5
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, title)
	}

	for i, day := range doc.Days {
		row := headerRow + 1 + i
		values := []interface{}{
			day.Date,
			day.Weekday,
			strings.Join(day.Marks, " "),
			day.Worked,
			day.Overtime,
			day.Shortfall,
			day.HourBankDay,
			day.StatusLabel,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	footerRow := headerRow + 1 + len(doc.Days)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footerRow), "total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", footerRow), doc.TotalWorked)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", footerRow), doc.TotalOvertime)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", footerRow), doc.TotalShortfall)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", footerRow), doc.HourBankFinal)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
