package timesheet

import (
	"time"
)

// DayStatus classifies a single day after pairing. It is a closed set:
// every computed day carries exactly one of these values.
type DayStatus string

const (
	StatusOK             DayStatus = "OK"
	StatusIncompletePair DayStatus = "PAR_INCOMPLETO"
	StatusNoRecord       DayStatus = "SEM_REGISTRO"
)

// PairingPolicy decides what to do when a second entrance arrives while an
// interval is still open.
type PairingPolicy string

const (
	// PairingReplaceOpenEntrance discards the dangling entrance and keeps the
	// newer one as the open candidate.
	PairingReplaceOpenEntrance PairingPolicy = "replace_open_entrance"

	// PairingFlagDayAnomalous keeps the first entrance and marks the whole day
	// PAR_INCOMPLETO.
	PairingFlagDayAnomalous PairingPolicy = "flag_day_anomalous"
)

// Config carries the knobs both query operations accept.
type Config struct {
	// LunchThresholdMinutes is the gross-minutes bar above which the lunch
	// deduction kicks in. Zero means "deduct whenever any work exists".
	LunchThresholdMinutes int

	// LunchDeductionMinutes is the fixed interval subtracted once per day.
	LunchDeductionMinutes int

	// ExpectedMinutesPerDay is the contracted daily schedule used for
	// overtime, shortfall and the time-bank balance.
	ExpectedMinutesPerDay int

	Pairing PairingPolicy
}

// DefaultConfig returns the policy defaults used when a caller passes no
// explicit configuration.
func DefaultConfig() Config {
	return Config{
		LunchThresholdMinutes: 0,
		LunchDeductionMinutes: 60,
		ExpectedMinutesPerDay: 480,
		Pairing:               PairingReplaceOpenEntrance,
	}
}

// WorkInterval is one entrance→exit pairing. Derived, never persisted.
type WorkInterval struct {
	Entrance time.Time `json:"entrance"`
	Exit     time.Time `json:"exit"`
	Minutes  int       `json:"minutes"`
}

// DaySummary is the per-day rollup produced by the daily computation.
type DaySummary struct {
	Day                   string         `json:"day"` // YYYY-MM-DD in the reference timezone
	GrossMinutes          int            `json:"gross_minutes"`
	LunchDeductionMinutes int            `json:"lunch_deduction_minutes"`
	LunchApplied          bool           `json:"lunch_applied"`
	NetMinutes            int            `json:"net_minutes"`
	Status                DayStatus      `json:"status"`
	Pairs                 []WorkInterval `json:"pairs"`

	// Marks are the normalized punch instants for the day, in order. They feed
	// the "batidas" column of the printed timesheet and the photo drawer.
	Marks []time.Time `json:"marks,omitempty"`

	// Derived against ExpectedMinutesPerDay.
	OvertimeMinutes  int `json:"overtime_minutes"`
	ShortfallMinutes int `json:"shortfall_minutes"`
	AbsenceMinutes   int `json:"absence_minutes"`
	BankMinutes      int `json:"bank_minutes"` // signed: net - expected
}

// MonthSummary aggregates DaySummary across one month for one employee.
type MonthSummary struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	TotalMinutes          int `json:"total_minutes"`
	WorkedDays            int `json:"worked_days"`
	TotalOvertimeMinutes  int `json:"total_overtime_minutes"`
	TotalShortfallMinutes int `json:"total_shortfall_minutes"`
	TotalAbsenceMinutes   int `json:"total_absence_minutes"`
	BankBalanceMinutes    int `json:"bank_balance_minutes"` // signed running balance

	Days []DaySummary `json:"days"`
}

// BatchItem is one employee's slot in a multi-employee monthly computation.
// Failures are carried per item so one broken unit never aborts its peers.
type BatchItem struct {
	EmployeeID string
	Summary    MonthSummary
	Err        error
}
