package accounting

import (
	"strconv"
	"strings"
)

const minutesPerHour = 60

// ParseTimeOfDay parses a 24-hour HH:MM value into minutes after midnight
func ParseTimeOfDay(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, ErrInvalidTime
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidTime
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidTime
	}

	return hour*minutesPerHour + minute, nil
}

// Duration returns the billable hours between two same-day times of day.
// Missing or malformed input yields 0, and so does an end before the start:
// sessions crossing midnight are not wrapped to the next day.
func Duration(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}

	startMin, err := ParseTimeOfDay(start)
	if err != nil {
		return 0
	}

	endMin, err := ParseTimeOfDay(end)
	if err != nil {
		return 0
	}

	diff := endMin - startMin
	if diff < 0 {
		return 0
	}

	return float64(diff) / minutesPerHour
}

// Earnings is duration times rate. Rounding happens only when formatting.
func Earnings(duration, rate float64) float64 {
	return duration * rate
}
