package models

// SessionGroup is an ordered bucket of sessions sharing a key
type SessionGroup struct {
	// Key identifies the group ("2024-06" or a batch type)
	Key string

	// Label is the human readable group heading ("June 2024", "Morning")
	Label string

	Sessions []*Session
	Totals   Totals
}

// Report is the structured, groupable view behind the share text and the
// printable summary
type Report struct {
	// From and To are the inclusive ISO date bounds
	From string
	To   string

	Totals Totals

	// Sessions are in chronological order
	Sessions []*Session

	ByMonth []*SessionGroup
	ByBatch []*SessionGroup
}
