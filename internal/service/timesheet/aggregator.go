package timesheet

import (
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// summarizeDay turns the pairing outcome into the per-day rollup: gross
// minutes, the lunch deduction under policy, net minutes and the derived
// schedule metrics.
func summarizeDay(day string, events []event, pairs []timesheet.WorkInterval, incomplete bool, cfg timesheet.Config) timesheet.DaySummary {
	sum := timesheet.DaySummary{
		Day:    day,
		Status: classify(len(events), incomplete),
		Pairs:  pairs,
	}
	for _, e := range events {
		sum.Marks = append(sum.Marks, e.at)
	}
	for _, p := range pairs {
		sum.GrossMinutes += p.Minutes
	}

	// Lunch is deducted once per day, and only when the day came out as a
	// single unbroken interval: two or more pairs mean the midday gap is
	// already excluded from the gross, so subtracting again would double
	// count the break.
	if len(pairs) == 1 && sum.GrossMinutes > cfg.LunchThresholdMinutes {
		deduction := cfg.LunchDeductionMinutes
		if deduction > sum.GrossMinutes {
			deduction = sum.GrossMinutes
		}
		if deduction > 0 {
			sum.LunchDeductionMinutes = deduction
			sum.LunchApplied = true
		}
	}
	sum.NetMinutes = sum.GrossMinutes - sum.LunchDeductionMinutes
	if sum.NetMinutes < 0 {
		sum.NetMinutes = 0
	}

	expected := cfg.ExpectedMinutesPerDay
	sum.BankMinutes = sum.NetMinutes - expected
	if sum.NetMinutes > expected {
		sum.OvertimeMinutes = sum.NetMinutes - expected
	}
	if sum.Status == timesheet.StatusNoRecord {
		// A day with no punches at all is an absence, not a late arrival.
		sum.AbsenceMinutes = expected
	} else if sum.NetMinutes < expected {
		sum.ShortfallMinutes = expected - sum.NetMinutes
	}

	return sum
}

// foldMonth accumulates one day into the month totals.
func foldMonth(month *timesheet.MonthSummary, day timesheet.DaySummary) {
	month.TotalMinutes += day.NetMinutes
	if day.NetMinutes > 0 {
		month.WorkedDays++
	}
	month.TotalOvertimeMinutes += day.OvertimeMinutes
	month.TotalShortfallMinutes += day.ShortfallMinutes
	month.TotalAbsenceMinutes += day.AbsenceMinutes
	month.BankBalanceMinutes += day.BankMinutes
	month.Days = append(month.Days, day)
}
