package accounting

import (
	"testing"

	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(sessions []*models.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

func TestSortForHistory(t *testing.T) {
	in := []*models.Session{
		session("morning", "2024-06-15", "09:00", 1, 0),
		session("older", "2024-06-01", "18:00", 1, 0),
		session("evening", "2024-06-15", "18:00", 1, 0),
		nil,
	}

	out := SortForHistory(in)

	assert.Equal(t, []string{"evening", "morning", "older"}, ids(out))
	// caller's slice keeps its order
	assert.Equal(t, "morning", in[0].ID)
}

func TestSortForReport(t *testing.T) {
	in := []*models.Session{
		session("evening", "2024-06-15", "18:00", 1, 0),
		session("older", "2024-06-01", "18:00", 1, 0),
		session("morning", "2024-06-15", "09:00", 1, 0),
	}

	assert.Equal(t, []string{"older", "morning", "evening"}, ids(SortForReport(in)))
}

func TestRecent(t *testing.T) {
	in := []*models.Session{
		session("a", "2024-06-01", "09:00", 1, 0),
		session("b", "2024-06-02", "09:00", 1, 0),
		session("c", "2024-06-03", "09:00", 1, 0),
	}

	assert.Equal(t, []string{"c", "b"}, ids(Recent(in, 2)))
	assert.Len(t, Recent(in, 10), 3)
	assert.Empty(t, Recent(in, -1))
}

func TestSearch(t *testing.T) {
	in := []*models.Session{
		{ID: "grav", Date: "2024-06-15", Subject: "Gravitation", Chapter: "Theory", BatchType: models.BatchTypeEvening},
		{ID: "opt", Date: "2024-05-02", Subject: "Optics", Chapter: "Numerical", BatchType: models.BatchTypeMorning},
		// malformed record with nothing but an id and a date
		{ID: "bare", Date: "2024-04-01"},
	}

	assert.Equal(t, []string{"grav"}, ids(Search(in, "GRAV")))
	assert.Equal(t, []string{"opt"}, ids(Search(in, "numer")))
	assert.Equal(t, []string{"opt"}, ids(Search(in, "morning")))
	assert.Equal(t, []string{"opt"}, ids(Search(in, "2024-05")))
	assert.Equal(t, []string{"grav", "opt", "bare"}, ids(Search(in, "  ")))
	assert.Empty(t, Search(in, "chemistry"))
}

func TestGroupByMonth(t *testing.T) {
	in := []*models.Session{
		session("j1", "2024-06-20", "09:00", 1, 100),
		session("m1", "2024-05-03", "09:00", 2, 200),
		session("j2", "2024-06-01", "09:00", 1, 100),
		session("bad", "someday", "09:00", 1, 50),
	}

	groups := GroupByMonth(in)

	require.Len(t, groups, 3)
	assert.Equal(t, "2024-06", groups[0].Key)
	assert.Equal(t, "June 2024", groups[0].Label)
	assert.Equal(t, []string{"j1", "j2"}, ids(groups[0].Sessions))
	assert.Equal(t, 200.0, groups[0].Totals.Earnings)
	assert.Equal(t, "May 2024", groups[1].Label)
	assert.Equal(t, "Unknown date", groups[2].Label)
}

func TestGroupByBatch(t *testing.T) {
	in := []*models.Session{
		{ID: "e1", BatchType: models.BatchTypeEvening, Earnings: 400},
		{ID: "x", BatchType: models.BatchType("Weekend")},
		{ID: "c1", BatchType: models.BatchTypeCustom},
		{ID: "m1", BatchType: models.BatchTypeMorning},
		{ID: "e2", BatchType: models.BatchTypeEvening, Earnings: 200},
	}

	groups := GroupByBatch(in)

	require.Len(t, groups, 4)
	assert.Equal(t, "Morning", groups[0].Label)
	assert.Equal(t, "Evening", groups[1].Label)
	assert.Equal(t, []string{"e1", "e2"}, ids(groups[1].Sessions))
	assert.Equal(t, 600.0, groups[1].Totals.Earnings)
	assert.Equal(t, "Custom", groups[2].Label)
	assert.Equal(t, "Weekend", groups[3].Label)
}
