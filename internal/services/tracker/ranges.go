package tracker

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
)

// Report range presets accepted by the presentation layers
const (
	RangeToday      = "today"
	RangeThisWeek   = "this-week"
	RangeThisMonth  = "this-month"
	RangeLastMonth  = "last-month"
	RangeLast7Days  = "last-7-days"
	RangeCustom     = "custom"
	lastDaysPresetN = 7
)

// RangeNames lists the presets in menu order
func RangeNames() []string {
	return []string{RangeToday, RangeThisWeek, RangeThisMonth, RangeLastMonth, RangeLast7Days, RangeCustom}
}

// ParseRange turns a preset name, or an explicit from/to pair, into a window.
// An empty name means custom when both dates are given and this month otherwise.
func ParseRange(name, from, to string) (accounting.Window, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		if from != "" || to != "" {
			name = RangeCustom
		} else {
			name = RangeThisMonth
		}
	}

	var w accounting.Window
	switch name {
	case RangeToday:
		w = accounting.Today()
	case RangeThisWeek:
		w = accounting.ThisWeek()
	case RangeThisMonth:
		w = accounting.ThisMonth()
	case RangeLastMonth:
		w = accounting.LastMonth()
	case RangeLast7Days:
		w = accounting.LastDays(lastDaysPresetN)
	case RangeCustom:
		w = accounting.Custom(from, to)
	default:
		return accounting.Window{}, fmt.Errorf("%w: %q", ErrUnknownRange, name)
	}

	if err := w.Validate(); err != nil {
		return accounting.Window{}, err
	}
	return w, nil
}
