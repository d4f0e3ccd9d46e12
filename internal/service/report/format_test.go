package report

import (
	"testing"

	"github.com/pontocerto/ponto-backend-go/internal/domain/report"
	"github.com/pontocerto/ponto-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToHHMM(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{1, "00:01"},
		{59, "00:59"},
		{60, "01:00"},
		{495, "08:15"},
		{540, "09:00"},
		// Hours do not wrap at 24 on a monthly total.
		{1500, "25:00"},
		{10560, "176:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinutesToHHMM(tt.minutes), "minutes %d", tt.minutes)
	}
}

func TestSignedHHMM(t *testing.T) {
	assert.Equal(t, "+08:00", SignedHHMM(480))
	assert.Equal(t, "-01:30", SignedHHMM(-90))
	assert.Equal(t, "+00:00", SignedHHMM(0))
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:15", 495},
		{"25:00", 1500},
		{"176:00", 10560},
	}

	for _, tt := range tests {
		got, err := ParseHHMM(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseHHMM_RoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 495, 1439, 1500, 10560} {
		got, err := ParseHHMM(MinutesToHHMM(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, got)
	}
}

func TestParseHHMM_Malformed(t *testing.T) {
	for _, in := range []string{"", "8:5", "08:60", "-1:00", "08-15", "0815", ":15", "08:"} {
		_, err := ParseHHMM(in)
		assert.ErrorIs(t, err, report.ErrMalformedDuration, "input %q", in)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "OK", StatusLabel(timesheet.StatusOK))
	assert.Equal(t, "Par Incompleto", StatusLabel(timesheet.StatusIncompletePair))
	assert.Equal(t, "Sem Registro", StatusLabel(timesheet.StatusNoRecord))

	// Unknown statuses pass through instead of failing the document.
	assert.Equal(t, "FERIADO", StatusLabel(timesheet.DayStatus("FERIADO")))
}
