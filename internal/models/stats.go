package models

// Totals is the result of folding a set of sessions
type Totals struct {
	// Earnings is the sum of stored session earnings
	Earnings float64

	// Hours is the sum of stored session durations
	Hours float64

	// Count is the number of sessions folded
	Count int
}

// DailyBucket is one bar of the earnings chart
type DailyBucket struct {
	// Date is the ISO date of the bucket
	Date string

	// Label is the short weekday name shown under the bar
	Label string

	// Amount is the sum of earnings for sessions on Date
	Amount float64
}

// Dashboard is everything the overview screen shows
type Dashboard struct {
	Today Totals
	Week  Totals
	Month Totals

	// Chart holds the trailing seven days, oldest first
	Chart []DailyBucket

	// ChartScale holds the y-axis tick values, highest first
	ChartScale []float64

	// Recent holds the most recent sessions in history order
	Recent []*Session
}
