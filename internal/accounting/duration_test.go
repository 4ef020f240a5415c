package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{name: "ninety minutes", start: "09:00", end: "10:30", want: 1.5},
		{name: "two hours", start: "18:00", end: "20:00", want: 2},
		{name: "fifteen minutes", start: "07:45", end: "08:00", want: 0.25},
		{name: "single digit hour", start: "9:00", end: "9:30", want: 0.5},
		{name: "equal times", start: "10:00", end: "10:00", want: 0},
		{name: "end before start", start: "20:00", end: "18:00", want: 0},
		{name: "crosses midnight", start: "23:00", end: "01:00", want: 0},
		{name: "empty start", start: "", end: "10:00", want: 0},
		{name: "empty end", start: "10:00", end: "", want: 0},
		{name: "garbage", start: "ten", end: "11:00", want: 0},
		{name: "out of range hour", start: "10:00", end: "25:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.start, tt.end))
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	minutes, err := ParseTimeOfDay("18:45")
	require.NoError(t, err)
	assert.Equal(t, 18*60+45, minutes)

	_, err = ParseTimeOfDay("18:60")
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = ParseTimeOfDay("1845")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestEarnings(t *testing.T) {
	assert.Equal(t, 500.0, Earnings(2.5, 200))
	assert.Equal(t, 0.0, Earnings(0, 200))
	// no rounding before display
	duration, rate := 1.25, 133.0
	assert.Equal(t, 166.25, Earnings(duration, rate))
}
