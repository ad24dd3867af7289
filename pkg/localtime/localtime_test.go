package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		local   string
		minutes int
		want    string
	}{
		{"simple", "2026-02-11T14:30", 30, "2026-02-11T15:00"},
		{"within hour", "2026-02-11T09:00", 15, "2026-02-11T09:15"},
		{"hour carry", "2026-02-11T17:50", 25, "2026-02-11T18:15"},
		{"midnight rollover", "2026-02-11T23:45", 30, "2026-02-12T00:15"},
		{"month rollover", "2026-02-28T23:30", 60, "2026-03-01T00:30"},
		{"negative", "2026-02-11T00:15", -30, "2026-02-10T23:45"},
		{"zero", "2026-02-11T14:30", 0, "2026-02-11T14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMinutes(tt.local, tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMinutes_Malformed(t *testing.T) {
	for _, local := range []string{
		"2026-02-11 14:30", // нет разделителя T
		"2026-02-11T14.30",
		"2026-02-11T25:00",
		"2026-02-11T14:60",
		"2026-13-11T14:30",
		"garbage",
		"",
	} {
		_, err := AddMinutes(local, 15)
		assert.ErrorIs(t, err, ErrMalformedTimestamp, "input %q", local)
	}
}

func TestWeekday(t *testing.T) {
	// 2026-02-11 - среда
	wd, err := Weekday("2026-02-11")
	require.NoError(t, err)
	assert.Equal(t, 3, wd)

	// воскресенье = 0
	wd, err = Weekday("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, 0, wd)

	_, err = Weekday("2026-2-11")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestTimeMinutesRoundtrip(t *testing.T) {
	m, err := TimeToMinutes("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, m)

	assert.Equal(t, "09:00", MinutesToTime(540))
	assert.Equal(t, "00:05", MinutesToTime(5))
	assert.Equal(t, "18:45", MinutesToTime(18*60+45))

	_, err = TimeToMinutes("9:00")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
	_, err = TimeToMinutes("ab:cd")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestToInstant(t *testing.T) {
	got, err := ToInstant("2026-02-11T14:30", "+03:00")
	require.NoError(t, err)

	want := time.Date(2026, 2, 11, 11, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %s", got)

	_, err = ToInstant("2026-02-11T14:30", "junk")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}

func TestSplitJoin(t *testing.T) {
	date, hhmm, err := Split("2026-02-11T14:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-11", date)
	assert.Equal(t, "14:30", hhmm)
	assert.Equal(t, "2026-02-11T14:30", Join(date, hhmm))
}
