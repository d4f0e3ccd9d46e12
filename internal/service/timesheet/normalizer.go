package timesheet

import (
	"sort"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
)

// event is one normalized clock action inside a single reference-timezone day.
type event struct {
	at   time.Time
	kind punch.Kind
}

// normalizeDay orders raw punch rows by timestamp, collapses exact
// timestamp+kind duplicates and drops rows falling outside the day's
// [start, end) boundary after timezone conversion. An empty result is a
// valid output, not an error.
func normalizeDay(rows []punch.Punch, dayStart, dayEnd time.Time, loc *time.Location) []event {
	events := make([]event, 0, len(rows))
	for _, row := range rows {
		if !row.Kind.Valid() {
			continue
		}
		at := row.PunchedAt.In(loc)
		if at.Before(dayStart) || !at.Before(dayEnd) {
			continue
		}
		events = append(events, event{at: at, kind: row.Kind})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].at.Equal(events[j].at) {
			// Entrance sorts before exit on identical instants so pairing
			// stays deterministic.
			return events[i].kind == punch.KindEntrance && events[j].kind == punch.KindExit
		}
		return events[i].at.Before(events[j].at)
	})

	deduped := events[:0]
	for _, e := range events {
		if len(deduped) > 0 {
			last := deduped[len(deduped)-1]
			if last.at.Equal(e.at) && last.kind == e.kind {
				continue
			}
		}
		deduped = append(deduped, e)
	}
	return deduped
}
