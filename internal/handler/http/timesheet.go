package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontocerto/ponto-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyTotal(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	engineCfg        timesheet.Config
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, engineCfg timesheet.Config) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService, engineCfg: engineCfg}
}

// Daily implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	day := r.URL.Query().Get("data")

	summary, err := t.timesheetService.ComputeDaily(r.Context(), employeeID, day, t.engineCfg)
	if err != nil {
		slog.Error("Failed to compute daily timesheet", "employee_id", employeeID, "day", day, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Monthly implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := t.timesheetService.ComputeMonthly(r.Context(), employeeID, year, month, t.engineCfg)
	if err != nil {
		slog.Error("Failed to compute monthly timesheet", "employee_id", employeeID, "year", year, "month", month, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// MonthlyTotal implements TimesheetHandler. Returns only the rollup, for
// dashboards that do not need the day-by-day breakdown.
func (t *TimesheetHandlerImpl) MonthlyTotal(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	year, month, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := t.timesheetService.ComputeMonthly(r.Context(), employeeID, year, month, t.engineCfg)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	summary.Days = nil
	response.Success(w, summary)
}

func parsePeriod(r *http.Request) (int, int, error) {
	query := r.URL.Query()
	year, err := strconv.Atoi(query.Get("ano"))
	if err != nil {
		return 0, 0, timesheet.ErrInvalidRange
	}
	month, err := strconv.Atoi(query.Get("mes"))
	if err != nil {
		return 0, 0, timesheet.ErrInvalidRange
	}
	return year, month, nil
}
