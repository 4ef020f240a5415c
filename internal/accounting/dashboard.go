package accounting

import (
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

const (
	// ChartDays is the number of days on the dashboard chart
	ChartDays = 7

	// ChartSteps is the number of y-axis intervals on the dashboard chart
	ChartSteps = 4

	// RecentCount is the number of sessions in the dashboard recent list
	RecentCount = 5
)

// BuildDashboard computes every dashboard figure from scratch
func BuildDashboard(sessions []*models.Session, now time.Time) *models.Dashboard {
	chart := DailySeries(sessions, ChartDays, now)

	return &models.Dashboard{
		Today:      Aggregate(sessions, Today(), now),
		Week:       Aggregate(sessions, ThisWeek(), now),
		Month:      Aggregate(sessions, ThisMonth(), now),
		Chart:      chart,
		ChartScale: ChartScale(chart, ChartSteps),
		Recent:     Recent(sessions, RecentCount),
	}
}

// BuildReport selects the sessions inside the window and returns them in
// chronological order together with month and batch groupings
func BuildReport(sessions []*models.Session, window Window, now time.Time) (*models.Report, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	from, to := window.Bounds(now)
	if to == "" {
		to = FormatISODate(now)
	}

	// the printed range is what gets filtered, so open-ended windows stop today
	selected := SortForReport(Filter(sessions, Custom(from, to), now))

	return &models.Report{
		From:     from,
		To:       to,
		Totals:   Sum(selected),
		Sessions: selected,
		ByMonth:  GroupByMonth(selected),
		ByBatch:  GroupByBatch(selected),
	}, nil
}
