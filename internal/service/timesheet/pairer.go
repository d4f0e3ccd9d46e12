package timesheet

import (
	"math"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
)

// pairDay walks the ordered event list with a two-state machine
// (awaiting entrance / awaiting exit) and closes entrance→exit pairs.
//
// Anomalies never raise errors, they only taint the day:
//   - an exit with no open entrance is an orphan;
//   - a second entrance while one is open follows the configured policy
//     (replace the open candidate, or keep it and flag the day);
//   - an entrance still open after the last event is unmatched.
//
// incomplete reports whether any of those occurred.
func pairDay(events []event, policy timesheet.PairingPolicy) (pairs []timesheet.WorkInterval, incomplete bool) {
	pairs = []timesheet.WorkInterval{}

	var open *time.Time
	for _, e := range events {
		switch e.kind {
		case punch.KindEntrance:
			if open == nil {
				at := e.at
				open = &at
				continue
			}
			// Double entrance, no exit in between.
			incomplete = true
			if policy == timesheet.PairingReplaceOpenEntrance {
				at := e.at
				open = &at
			}
		case punch.KindExit:
			if open == nil {
				// Orphan exit, no matching entrance.
				incomplete = true
				continue
			}
			pairs = append(pairs, timesheet.WorkInterval{
				Entrance: *open,
				Exit:     e.at,
				Minutes:  intervalMinutes(*open, e.at),
			})
			open = nil
		}
	}

	if open != nil {
		incomplete = true
	}
	return pairs, incomplete
}

// intervalMinutes rounds the entrance→exit span to whole minutes.
func intervalMinutes(entrance, exit time.Time) int {
	return int(math.Round(exit.Sub(entrance).Minutes()))
}

// classify maps the pairing outcome onto the closed day-status set.
func classify(eventCount int, incomplete bool) timesheet.DayStatus {
	switch {
	case eventCount == 0:
		return timesheet.StatusNoRecord
	case incomplete:
		return timesheet.StatusIncompletePair
	default:
		return timesheet.StatusOK
	}
}
