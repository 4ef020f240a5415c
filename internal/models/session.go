package models

import (
	"time"
)

// Session represents one logged teaching session
type Session struct {
	// ID is assigned by the store on creation and never changes afterwards
	ID string `json:"id,omitempty"`

	// Date is the billing day as an ISO date (YYYY-MM-DD)
	Date string `json:"date"`

	// StartTime and EndTime are wall-clock bounds in 24-hour HH:MM form
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	// BatchType selects the default rate suggested for the session
	BatchType BatchType `json:"batchType"`

	// Rate is the hourly rate captured when the session was saved
	Rate float64 `json:"rate"`

	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Pages   string `json:"pages"`
	Notes   string `json:"notes"`

	// Duration is in hours, computed and stored at save time
	Duration float64 `json:"duration"`

	// Earnings is Duration * Rate at save time
	Earnings float64 `json:"earnings"`

	// Timestamp is set by the store on every write; only used for tie-breaking
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Clone returns a copy of the session that shares nothing with the original
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
