package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/report"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.MonthlyDocument(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Failed to build monthly report", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, doc)
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	raw, err := h.reportService.ExportCSV(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Failed to export csv report", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="espelho-%04d-%02d.csv"`, year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// ExportXLSX implements ReportHandler.
func (h *ReportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	raw, err := h.reportService.ExportXLSX(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Failed to export xlsx report", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="espelho-%04d-%02d.xlsx"`, year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
