package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pontocerto/ponto-backend-go/internal/domain/report"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// statusLabels maps engine statuses to the labels printed on the timesheet.
// Unknown statuses pass through untouched so new engine states degrade
// gracefully instead of breaking documents.
var statusLabels = map[timesheet.DayStatus]string{
	timesheet.StatusOK:             "OK",
	timesheet.StatusIncompletePair: "Par Incompleto",
	timesheet.StatusNoRecord:       "Sem Registro",
}

// StatusLabel returns the printable label for a day status.
func StatusLabel(status timesheet.DayStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// MinutesToHHMM renders a non-negative minute count as HH:MM. Hours are not
// wrapped at 24, so 1500 minutes renders as "25:00".
func MinutesToHHMM(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SignedHHMM renders a minute balance with an explicit sign, zero included.
func SignedHHMM(minutes int) string {
	if minutes < 0 {
		return "-" + MinutesToHHMM(-minutes)
	}
	return "+" + MinutesToHHMM(minutes)
}

// ParseHHMM is the inverse of MinutesToHHMM.
func ParseHHMM(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", report.ErrMalformedDuration, s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", report.ErrMalformedDuration, s)
	}
	mins, err := strconv.Atoi(mm)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", report.ErrMalformedDuration, s)
	}
	return hours*60 + mins, nil
}

// weekdayLabels renders weekdays in pt-BR, the language of the printed
// timesheet.
var weekdayLabels = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}
