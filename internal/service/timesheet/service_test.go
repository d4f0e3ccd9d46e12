package timesheet

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed offset stands in for America/Sao_Paulo so the tests do not depend on
// the host tzdata.
var testLoc = time.FixedZone("BRT", -3*60*60)

// stubPunchSource serves canned punches per employee, filtered to the
// requested range like the real repository does.
type stubPunchSource struct {
	rows map[string][]punch.Punch
	errs map[string]error
}

func (s *stubPunchSource) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	if err := s.errs[employeeID]; err != nil {
		return nil, err
	}
	var out []punch.Punch
	for _, row := range s.rows[employeeID] {
		if !row.PunchedAt.Before(from) && row.PunchedAt.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func at(day string, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", day+" "+clock+":00", testLoc)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02 15:04:05", day+" "+clock, testLoc)
		if err != nil {
			panic(err)
		}
	}
	return t
}

func mark(employeeID, day, clock string, kind punch.Kind) punch.Punch {
	return punch.Punch{
		ID:         fmt.Sprintf("%s-%s-%s", employeeID, day, clock),
		CompanyID:  "co-1",
		EmployeeID: employeeID,
		Kind:       kind,
		PunchedAt:  at(day, clock),
	}
}

func newTestService(src *stubPunchSource) timesheet.TimesheetService {
	return NewTimesheetService(src, testLoc, 4)
}

func TestComputeDaily_NoPunches(t *testing.T) {
	svc := newTestService(&stubPunchSource{})

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusNoRecord, got.Status)
	assert.Equal(t, 0, got.NetMinutes)
	assert.Empty(t, got.Pairs)
	assert.Equal(t, 480, got.AbsenceMinutes)
	assert.Equal(t, -480, got.BankMinutes)
}

func TestComputeDaily_TwoPairsLunchNotDoubleDeducted(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "12:00", punch.KindExit),
			mark("emp-1", "2025-03-10", "13:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "17:53", punch.KindExit),
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, got.Pairs, 2)
	assert.Equal(t, 240, got.Pairs[0].Minutes)
	assert.Equal(t, 293, got.Pairs[1].Minutes)
	assert.Equal(t, 533, got.GrossMinutes)
	// The midday gap is already excluded by the two pairs; deducting the
	// fixed lunch again would double count the break.
	assert.False(t, got.LunchApplied)
	assert.Equal(t, 0, got.LunchDeductionMinutes)
	assert.Equal(t, 533, got.NetMinutes)
	assert.Equal(t, timesheet.StatusOK, got.Status)
}

func TestComputeDaily_SinglePairLunchDeducted(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "17:00", punch.KindExit),
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 540, got.GrossMinutes)
	assert.True(t, got.LunchApplied)
	assert.Equal(t, 60, got.LunchDeductionMinutes)
	assert.Equal(t, 480, got.NetMinutes)
	assert.Equal(t, timesheet.StatusOK, got.Status)
	assert.Equal(t, 0, got.OvertimeMinutes)
	assert.Equal(t, 0, got.ShortfallMinutes)
}

func TestComputeDaily_LunchNeverDrivesNetNegative(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "08:30", punch.KindExit),
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 30, got.GrossMinutes)
	assert.Equal(t, 30, got.LunchDeductionMinutes)
	assert.Equal(t, 0, got.NetMinutes)
}

func TestComputeDaily_LunchThreshold(t *testing.T) {
	cfg := timesheet.DefaultConfig()
	cfg.LunchThresholdMinutes = 360

	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "13:00", punch.KindExit), // 300 min, below bar
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", cfg)
	require.NoError(t, err)

	assert.False(t, got.LunchApplied)
	assert.Equal(t, 300, got.NetMinutes)
}

func TestComputeDaily_UnmatchedEntrance(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance)},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusIncompletePair, got.Status)
	assert.Empty(t, got.Pairs)
	assert.Equal(t, 0, got.NetMinutes)
}

func TestComputeDaily_OrphanExit(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {mark("emp-1", "2025-03-10", "17:00", punch.KindExit)},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, timesheet.StatusIncompletePair, got.Status)
	assert.Empty(t, got.Pairs)
}

func TestComputeDaily_DoubleEntrancePolicies(t *testing.T) {
	rows := map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "09:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "17:00", punch.KindExit),
		},
	}

	t.Run("replace open entrance", func(t *testing.T) {
		cfg := timesheet.DefaultConfig()
		cfg.Pairing = timesheet.PairingReplaceOpenEntrance
		svc := newTestService(&stubPunchSource{rows: rows})

		got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", cfg)
		require.NoError(t, err)

		require.Len(t, got.Pairs, 1)
		assert.Equal(t, at("2025-03-10", "09:00"), got.Pairs[0].Entrance)
		assert.Equal(t, 480, got.GrossMinutes)
		assert.Equal(t, timesheet.StatusIncompletePair, got.Status)
	})

	t.Run("flag day anomalous", func(t *testing.T) {
		cfg := timesheet.DefaultConfig()
		cfg.Pairing = timesheet.PairingFlagDayAnomalous
		svc := newTestService(&stubPunchSource{rows: rows})

		got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", cfg)
		require.NoError(t, err)

		require.Len(t, got.Pairs, 1)
		assert.Equal(t, at("2025-03-10", "08:00"), got.Pairs[0].Entrance)
		assert.Equal(t, 540, got.GrossMinutes)
		assert.Equal(t, timesheet.StatusIncompletePair, got.Status)
	})
}

func TestComputeDaily_DuplicatesAndOutOfDayRows(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance), // exact duplicate
			mark("emp-1", "2025-03-10", "12:00", punch.KindExit),
			mark("emp-1", "2025-03-11", "08:00", punch.KindEntrance), // next day
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, got.Marks, 2)
	require.Len(t, got.Pairs, 1)
	assert.Equal(t, 240, got.GrossMinutes)
	assert.Equal(t, timesheet.StatusOK, got.Status)
}

func TestComputeDaily_SecondsAreRounded(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00:30", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "08:30:00", punch.KindExit),
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	// 29.5 minutes rounds up.
	assert.Equal(t, 30, got.Pairs[0].Minutes)
}

func TestComputeDaily_Idempotent(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "12:00", punch.KindExit),
			mark("emp-1", "2025-03-10", "13:00", punch.KindEntrance),
		},
	}}
	svc := newTestService(src)

	first, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)
	second, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeDaily_Conservation(t *testing.T) {
	src := &stubPunchSource{rows: map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "07:12", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "11:47", punch.KindExit),
			mark("emp-1", "2025-03-10", "12:31", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "18:05", punch.KindExit),
			mark("emp-1", "2025-03-10", "19:00", punch.KindEntrance),
			mark("emp-1", "2025-03-10", "21:15", punch.KindExit),
		},
	}}
	svc := newTestService(src)

	got, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	require.NoError(t, err)

	sum := 0
	for _, p := range got.Pairs {
		sum += p.Minutes
	}
	assert.Equal(t, sum, got.GrossMinutes)
	assert.Equal(t, got.GrossMinutes-got.LunchDeductionMinutes, got.NetMinutes)
	assert.GreaterOrEqual(t, got.NetMinutes, 0)
}

func TestComputeDaily_InvalidDay(t *testing.T) {
	svc := newTestService(&stubPunchSource{})

	for _, day := range []string{"2025-02-30", "not-a-day", "1999-01-01", ""} {
		_, err := svc.ComputeDaily(context.Background(), "emp-1", day, timesheet.DefaultConfig())
		assert.ErrorIs(t, err, timesheet.ErrInvalidRange, "day %q", day)
	}
}

func TestComputeDaily_DataUnavailable(t *testing.T) {
	src := &stubPunchSource{errs: map[string]error{"emp-1": errors.New("connection refused")}}
	svc := newTestService(src)

	_, err := svc.ComputeDaily(context.Background(), "emp-1", "2025-03-10", timesheet.DefaultConfig())
	assert.ErrorIs(t, err, timesheet.ErrDataUnavailable)
}

func TestComputeMonthly_TotalsAndBank(t *testing.T) {
	// April 2025: 30 days. 22 worked days of a single 09:00-18:00 pair
	// (540 gross, 60 lunch, 480 net), 8 empty days.
	rows := map[string][]punch.Punch{"emp-1": nil}
	for day := 1; day <= 22; day++ {
		iso := fmt.Sprintf("2025-04-%02d", day)
		rows["emp-1"] = append(rows["emp-1"],
			mark("emp-1", iso, "09:00", punch.KindEntrance),
			mark("emp-1", iso, "18:00", punch.KindExit),
		)
	}
	svc := newTestService(&stubPunchSource{rows: rows})

	got, err := svc.ComputeMonthly(context.Background(), "emp-1", 2025, 4, timesheet.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, got.Days, 30)
	assert.Equal(t, 22*480, got.TotalMinutes)
	assert.Equal(t, 22, got.WorkedDays)
	assert.Equal(t, 8*480, got.TotalAbsenceMinutes)
	assert.Equal(t, -8*480, got.BankBalanceMinutes)

	// Monthly sums must agree with the per-day rollups, and every day must
	// land on exactly one known status.
	total, worked := 0, 0
	for _, day := range got.Days {
		total += day.NetMinutes
		if day.NetMinutes > 0 {
			worked++
		}
		assert.Contains(t, []timesheet.DayStatus{
			timesheet.StatusOK,
			timesheet.StatusIncompletePair,
			timesheet.StatusNoRecord,
		}, day.Status)
	}
	assert.Equal(t, total, got.TotalMinutes)
	assert.Equal(t, worked, got.WorkedDays)
}

func TestComputeMonthly_MidnightCrossingShift(t *testing.T) {
	rows := map[string][]punch.Punch{
		"emp-1": {
			mark("emp-1", "2025-03-10", "23:00", punch.KindEntrance),
			mark("emp-1", "2025-03-11", "01:00", punch.KindExit),
		},
	}
	svc := newTestService(&stubPunchSource{rows: rows})

	got, err := svc.ComputeMonthly(context.Background(), "emp-1", 2025, 3, timesheet.DefaultConfig())
	require.NoError(t, err)

	// Days are midnight-to-midnight: the entrance strands on the 10th and the
	// exit orphans on the 11th. Both days are anomalous, neither errors.
	assert.Equal(t, timesheet.StatusIncompletePair, got.Days[9].Status)
	assert.Equal(t, timesheet.StatusIncompletePair, got.Days[10].Status)
	assert.Equal(t, 0, got.TotalMinutes)
}

func TestComputeMonthly_InvalidRange(t *testing.T) {
	svc := newTestService(&stubPunchSource{})

	_, err := svc.ComputeMonthly(context.Background(), "emp-1", 2025, 0, timesheet.DefaultConfig())
	assert.ErrorIs(t, err, timesheet.ErrInvalidRange)

	_, err = svc.ComputeMonthly(context.Background(), "emp-1", 2025, 13, timesheet.DefaultConfig())
	assert.ErrorIs(t, err, timesheet.ErrInvalidRange)

	_, err = svc.ComputeMonthly(context.Background(), "emp-1", 1999, 6, timesheet.DefaultConfig())
	assert.ErrorIs(t, err, timesheet.ErrInvalidRange)
}

func TestComputeMonthlyBatch_FailSoft(t *testing.T) {
	rows := map[string][]punch.Punch{
		"emp-ok": {
			mark("emp-ok", "2025-03-10", "08:00", punch.KindEntrance),
			mark("emp-ok", "2025-03-10", "17:00", punch.KindExit),
		},
	}
	src := &stubPunchSource{
		rows: rows,
		errs: map[string]error{"emp-bad": errors.New("timeout")},
	}
	svc := newTestService(src)

	got, err := svc.ComputeMonthlyBatch(context.Background(), []string{"emp-ok", "emp-bad", "emp-silent"}, 2025, 3, timesheet.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Healthy employee computed.
	assert.Equal(t, "emp-ok", got[0].EmployeeID)
	require.NoError(t, got[0].Err)
	assert.Equal(t, 480, got[0].Summary.TotalMinutes)
	assert.Equal(t, 1, got[0].Summary.WorkedDays)

	// Broken employee carries its own error without aborting peers.
	assert.Equal(t, "emp-bad", got[1].EmployeeID)
	assert.ErrorIs(t, got[1].Err, timesheet.ErrDataUnavailable)

	// Unknown employee is all zeros, every day SEM_REGISTRO, not an error.
	require.NoError(t, got[2].Err)
	assert.Equal(t, 0, got[2].Summary.TotalMinutes)
	assert.Equal(t, 0, got[2].Summary.WorkedDays)
	for _, day := range got[2].Summary.Days {
		assert.Equal(t, timesheet.StatusNoRecord, day.Status)
	}
}
