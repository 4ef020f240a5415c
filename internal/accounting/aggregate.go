package accounting

import (
	"math"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

// minChartMax keeps the chart readable when earnings are tiny or zero
const minChartMax = 100

// Aggregate folds every session inside the window into totals. It always
// rescans the full slice; there is no incremental form.
func Aggregate(sessions []*models.Session, window Window, now time.Time) models.Totals {
	var totals models.Totals
	for _, s := range sessions {
		if s == nil || !window.Contains(s.Date, now) {
			continue
		}
		totals.Earnings += s.Earnings
		totals.Hours += s.Duration
		totals.Count++
	}
	return totals
}

// Sum folds every session without filtering
func Sum(sessions []*models.Session) models.Totals {
	var totals models.Totals
	for _, s := range sessions {
		if s == nil {
			continue
		}
		totals.Earnings += s.Earnings
		totals.Hours += s.Duration
		totals.Count++
	}
	return totals
}

// DailySeries returns one bucket per day for the trailing n days including
// today, oldest first
func DailySeries(sessions []*models.Session, n int, now time.Time) []models.DailyBucket {
	if n <= 0 {
		return []models.DailyBucket{}
	}

	byDate := make(map[string]float64)
	for _, s := range sessions {
		if s == nil {
			continue
		}
		byDate[s.Date] += s.Earnings
	}

	y, m, d := now.Date()
	buckets := make([]models.DailyBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := time.Date(y, m, d-i, 0, 0, 0, 0, now.Location())
		date := FormatISODate(day)
		buckets = append(buckets, models.DailyBucket{
			Date:   date,
			Label:  day.Format("Mon"),
			Amount: byDate[date],
		})
	}

	return buckets
}

// ChartScale returns steps+1 y-axis tick values, highest first. The top of
// the axis is the largest bucket, or 100 when every bucket is smaller.
func ChartScale(buckets []models.DailyBucket, steps int) []float64 {
	if steps <= 0 {
		return []float64{}
	}

	maxVal := float64(minChartMax)
	for _, b := range buckets {
		if b.Amount > maxVal {
			maxVal = b.Amount
		}
	}

	step := math.Ceil(maxVal / float64(steps))
	ticks := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		ticks = append(ticks, step*float64(steps-i))
	}
	return ticks
}
