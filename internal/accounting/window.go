package accounting

import (
	"fmt"
	"time"
)

// ISODateLayout is the layout of session dates
const ISODateLayout = "2006-01-02"

// FormatISODate returns the calendar date of t in t's own location
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseISODate parses a session date as midnight in loc
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func isISODate(s string) bool {
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// WindowKind enumerates the supported aggregation windows
type WindowKind int

const (
	// WindowToday matches the current calendar date exactly
	WindowToday WindowKind = iota

	// WindowThisWeek matches dates on or after the most recent Sunday
	WindowThisWeek

	// WindowThisMonth matches dates in the current calendar month and year
	WindowThisMonth

	// WindowLastMonth matches the whole previous calendar month
	WindowLastMonth

	// WindowLastDays matches the trailing Days days up to today
	WindowLastDays

	// WindowCustom matches an inclusive From..To range
	WindowCustom
)

// Window selects the sessions an aggregate covers. Bounds are resolved
// against the time passed in, never against the system clock.
type Window struct {
	Kind WindowKind

	// From and To are only used by WindowCustom
	From string
	To   string

	// Days is only used by WindowLastDays
	Days int
}

// Today returns the window for the current date
func Today() Window { return Window{Kind: WindowToday} }

// ThisWeek returns the window starting on the most recent Sunday
func ThisWeek() Window { return Window{Kind: WindowThisWeek} }

// ThisMonth returns the window for the current calendar month
func ThisMonth() Window { return Window{Kind: WindowThisMonth} }

// LastMonth returns the window for the previous calendar month
func LastMonth() Window { return Window{Kind: WindowLastMonth} }

// LastDays returns the window from n days ago through today
func LastDays(n int) Window { return Window{Kind: WindowLastDays, Days: n} }

// Custom returns an inclusive window between two ISO dates
func Custom(from, to string) Window { return Window{Kind: WindowCustom, From: from, To: to} }

// Validate checks the window's parameters
func (w Window) Validate() error {
	switch w.Kind {
	case WindowToday, WindowThisWeek, WindowThisMonth, WindowLastMonth:
		return nil
	case WindowLastDays:
		if w.Days < 0 {
			return fmt.Errorf("%w: negative day count %d", ErrInvalidWindow, w.Days)
		}
		return nil
	case WindowCustom:
		if !isISODate(w.From) || !isISODate(w.To) {
			return fmt.Errorf("%w: %w", ErrInvalidWindow, ErrInvalidDate)
		}
		if w.From > w.To {
			return fmt.Errorf("%w: %s is after %s", ErrInvalidWindow, w.From, w.To)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrInvalidWindow, w.Kind)
}

// Bounds returns the inclusive ISO date bounds of the window at now. An empty
// upper bound means the window is open-ended.
func (w Window) Bounds(now time.Time) (from, to string) {
	y, m, d := now.Date()
	loc := now.Location()

	switch w.Kind {
	case WindowToday:
		today := FormatISODate(now)
		return today, today
	case WindowThisWeek:
		sunday := time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc)
		return FormatISODate(sunday), ""
	case WindowThisMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc)
		return FormatISODate(first), FormatISODate(last)
	case WindowLastMonth:
		first := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		last := time.Date(y, m, 0, 0, 0, 0, 0, loc)
		return FormatISODate(first), FormatISODate(last)
	case WindowLastDays:
		start := time.Date(y, m, d-w.Days, 0, 0, 0, 0, loc)
		return FormatISODate(start), FormatISODate(now)
	case WindowCustom:
		return w.From, w.To
	}
	return "", ""
}

// Contains reports whether a session date falls inside the window at now.
// Malformed dates are never inside any window.
func (w Window) Contains(date string, now time.Time) bool {
	if !isISODate(date) {
		return false
	}

	from, to := w.Bounds(now)
	if from == "" {
		return false
	}
	if date < from {
		return false
	}
	return to == "" || date <= to
}
