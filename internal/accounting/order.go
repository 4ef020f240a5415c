package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

// SortForHistory returns the sessions most recent first: date descending,
// then start time descending
func SortForHistory(sessions []*models.Session) []*models.Session {
	out := compact(sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].StartTime > out[j].StartTime
	})
	return out
}

// SortForReport returns the sessions in chronological order
func SortForReport(sessions []*models.Session) []*models.Session {
	out := compact(sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Recent returns the first n sessions in history order
func Recent(sessions []*models.Session, n int) []*models.Session {
	sorted := SortForHistory(sessions)
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Search keeps sessions whose subject, chapter, batch type or date contain
// the query, ignoring case. Input order is preserved.
func Search(sessions []*models.Session, query string) []*models.Session {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return compact(sessions)
	}

	out := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if strings.Contains(strings.ToLower(s.Subject), q) ||
			strings.Contains(strings.ToLower(s.Chapter), q) ||
			strings.Contains(strings.ToLower(string(s.BatchType)), q) ||
			strings.Contains(s.Date, q) {
			out = append(out, s)
		}
	}
	return out
}

// Filter keeps the sessions inside the window, preserving order
func Filter(sessions []*models.Session, window Window, now time.Time) []*models.Session {
	out := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil && window.Contains(s.Date, now) {
			out = append(out, s)
		}
	}
	return out
}

// GroupByMonth partitions sessions by calendar month. Groups appear in the
// order their first session appears; sessions keep their input order.
func GroupByMonth(sessions []*models.Session) []*models.SessionGroup {
	var groups []*models.SessionGroup
	index := make(map[string]*models.SessionGroup)

	for _, s := range sessions {
		if s == nil {
			continue
		}

		key, label := "unknown", "Unknown date"
		if t, err := ParseISODate(s.Date, time.UTC); err == nil {
			key = t.Format("2006-01")
			label = t.Format("January 2006")
		}

		g, ok := index[key]
		if !ok {
			g = &models.SessionGroup{Key: key, Label: label}
			index[key] = g
			groups = append(groups, g)
		}
		addToGroup(g, s)
	}

	return groups
}

// GroupByBatch partitions sessions by batch type, known batches first in
// Morning, Evening, Custom order. Empty groups are omitted.
func GroupByBatch(sessions []*models.Session) []*models.SessionGroup {
	index := make(map[models.BatchType]*models.SessionGroup)
	var unknown []*models.SessionGroup

	for _, s := range sessions {
		if s == nil {
			continue
		}

		g, ok := index[s.BatchType]
		if !ok {
			label := string(s.BatchType)
			if label == "" {
				label = "Unspecified"
			}
			g = &models.SessionGroup{Key: string(s.BatchType), Label: label}
			index[s.BatchType] = g
			if !s.BatchType.IsValid() {
				unknown = append(unknown, g)
			}
		}
		addToGroup(g, s)
	}

	var groups []*models.SessionGroup
	for _, bt := range models.BatchTypes() {
		if g, ok := index[bt]; ok {
			groups = append(groups, g)
		}
	}
	return append(groups, unknown...)
}

func addToGroup(g *models.SessionGroup, s *models.Session) {
	g.Sessions = append(g.Sessions, s)
	g.Totals.Earnings += s.Earnings
	g.Totals.Hours += s.Duration
	g.Totals.Count++
}

// compact copies the slice without nil entries so sorting never touches the
// caller's backing array
func compact(sessions []*models.Session) []*models.Session {
	out := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
