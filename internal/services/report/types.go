package report

import (
	"errors"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
)

// Grouping selects how the printable view is sectioned
type Grouping string

const (
	// GroupingMonth sections the view by calendar month
	GroupingMonth Grouping = "month"

	// GroupingBatch sections the view by batch type
	GroupingBatch Grouping = "batch"

	// GroupingNone renders a single flat section
	GroupingNone Grouping = "none"
)

// ErrUnknownGrouping is returned by ParseGrouping for unsupported values
var ErrUnknownGrouping = errors.New("unknown grouping")

// ParseGrouping accepts a grouping name in any casing. Empty means none.
func ParseGrouping(s string) (Grouping, error) {
	switch Grouping(strings.ToLower(strings.TrimSpace(s))) {
	case GroupingMonth:
		return GroupingMonth, nil
	case GroupingBatch:
		return GroupingBatch, nil
	case GroupingNone, "":
		return GroupingNone, nil
	}
	return "", ErrUnknownGrouping
}

// Config holds configuration for the report service
type Config struct {
	// Title heads every report; defaults to DefaultTitle
	Title string

	// Author is appended to the share text heading when set
	Author string

	// Money formats amounts; defaults to rupees with Indian digit grouping
	Money *accounting.MoneyFormatter
}

// ShareTextInput contains parameters for rendering share text
type ShareTextInput struct {
	Report *models.Report
}

// ShareTextOutput contains the rendered text
type ShareTextOutput struct {
	Text string
}

// PrintViewInput contains parameters for rendering the printable view
type PrintViewInput struct {
	Report   *models.Report
	Grouping Grouping
}

// PrintViewOutput contains the printable view
type PrintViewOutput struct {
	View *View
}

// View is a report with every value already formatted for display
type View struct {
	Title    string
	Range    string
	Earnings string
	Hours    string
	Count    int
	Sections []*Section

	// Empty is set when no session falls in the range
	Empty bool
}

// Section is one group of rows with its subtotal
type Section struct {
	// Heading is empty for an ungrouped view
	Heading  string
	Rows     []*Row
	Earnings string
	Hours    string
	Count    int
}

// Row is one session line
type Row struct {
	Date      string
	Time      string
	BatchType string
	Subject   string
	Chapter   string
	Notes     string
	Hours     string
	Amount    string
}
