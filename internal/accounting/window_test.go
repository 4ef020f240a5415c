package accounting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Saturday
var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		from   string
		to     string
	}{
		{name: "today", window: Today(), from: "2024-06-15", to: "2024-06-15"},
		{name: "this week starts sunday", window: ThisWeek(), from: "2024-06-09", to: ""},
		{name: "this month", window: ThisMonth(), from: "2024-06-01", to: "2024-06-30"},
		{name: "last month", window: LastMonth(), from: "2024-05-01", to: "2024-05-31"},
		{name: "last seven days", window: LastDays(7), from: "2024-06-08", to: "2024-06-15"},
		{name: "custom", window: Custom("2024-01-01", "2024-01-31"), from: "2024-01-01", to: "2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.window.Bounds(testNow)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestThisWeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 21, 0, 0, 0, time.UTC)
	from, _ := ThisWeek().Bounds(sunday)
	assert.Equal(t, "2024-06-09", from)
}

func TestThisWeekAcrossYearEnd(t *testing.T) {
	wednesday := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	w := ThisWeek()

	assert.True(t, w.Contains("2024-12-29", wednesday))
	assert.False(t, w.Contains("2024-12-28", wednesday))
}

func TestWindowContains(t *testing.T) {
	assert.True(t, Today().Contains("2024-06-15", testNow))
	assert.False(t, Today().Contains("2024-06-14", testNow))

	assert.True(t, ThisWeek().Contains("2024-06-09", testNow))
	assert.False(t, ThisWeek().Contains("2024-06-08", testNow))

	assert.True(t, ThisMonth().Contains("2024-06-01", testNow))
	assert.True(t, ThisMonth().Contains("2024-06-30", testNow))
	assert.False(t, ThisMonth().Contains("2024-07-01", testNow))
	// same month number, different year
	assert.False(t, ThisMonth().Contains("2023-06-15", testNow))
	assert.False(t, ThisMonth().Contains("2025-06-15", testNow))

	custom := Custom("2024-06-01", "2024-06-10")
	assert.True(t, custom.Contains("2024-06-01", testNow))
	assert.True(t, custom.Contains("2024-06-10", testNow))
	assert.False(t, custom.Contains("2024-06-11", testNow))

	assert.False(t, Today().Contains("", testNow))
	assert.False(t, ThisWeek().Contains("not-a-date", testNow))
}

func TestWindowUsesCallerLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 00:30 in India is still the previous day in UTC
	lateNight := time.Date(2024, 6, 16, 0, 30, 0, 0, ist)

	assert.True(t, Today().Contains("2024-06-16", lateNight))
	assert.False(t, Today().Contains("2024-06-15", lateNight))
}

func TestWindowValidate(t *testing.T) {
	assert.NoError(t, Today().Validate())
	assert.NoError(t, Custom("2024-06-01", "2024-06-01").Validate())
	assert.ErrorIs(t, Custom("2024-06-10", "2024-06-01").Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, Custom("june", "2024-06-01").Validate(), ErrInvalidDate)
	assert.ErrorIs(t, LastDays(-1).Validate(), ErrInvalidWindow)
	assert.ErrorIs(t, Window{Kind: WindowKind(42)}.Validate(), ErrInvalidWindow)
}
