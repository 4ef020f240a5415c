package accounting

import (
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *models.Session {
	return &models.Session{
		Date:      "2024-06-15",
		StartTime: "18:00",
		EndTime:   "20:00",
		BatchType: models.BatchTypeEvening,
		Rate:      200,
		Subject:   "Gravitation",
	}
}

func TestPrepareRecomputesDerivedFields(t *testing.T) {
	in := validSession()
	in.Duration = 99
	in.Earnings = 12345

	out, err := Prepare(in)
	require.NoError(t, err)

	assert.Equal(t, 2.0, out.Duration)
	assert.Equal(t, 400.0, out.Earnings)
	assert.Equal(t, "Gravitation", out.Subject)
	// the caller's copy is left alone
	assert.Equal(t, 99.0, in.Duration)
}

func TestPrepareRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.Session)
		want   error
	}{
		{name: "end before start", mutate: func(s *models.Session) { s.EndTime = "17:00" }, want: ErrInvalidTimeRange},
		{name: "equal times", mutate: func(s *models.Session) { s.EndTime = s.StartTime }, want: ErrInvalidTimeRange},
		{name: "missing start", mutate: func(s *models.Session) { s.StartTime = "" }, want: ErrInvalidTimeRange},
		{name: "missing end", mutate: func(s *models.Session) { s.EndTime = "" }, want: ErrInvalidTimeRange},
		{name: "unknown batch", mutate: func(s *models.Session) { s.BatchType = "Night" }, want: models.ErrUnknownBatchType},
		{name: "bad date", mutate: func(s *models.Session) { s.Date = "15/06/2024" }, want: ErrInvalidDate},
		{name: "negative rate", mutate: func(s *models.Session) { s.Rate = -1 }, want: ErrInvalidRate},
		{name: "nan rate", mutate: func(s *models.Session) { s.Rate = math.NaN() }, want: ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)

			out, err := Prepare(s)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Prepare(nil)
	assert.ErrorIs(t, err, ErrNilSession)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Please check start and end times. End time must be after start time.", UserMessage(ErrInvalidTimeRange))
	assert.Equal(t, "", UserMessage(nil))
}

func TestDuplicate(t *testing.T) {
	now := time.Date(2024, 7, 2, 16, 0, 0, 0, time.UTC)
	original := validSession()
	original.ID = "abc"
	original.Timestamp = time.Date(2024, 6, 15, 20, 1, 0, 0, time.UTC)
	original.Chapter = "Numerical"
	original.Pages = "12-24"
	original.Notes = "good progress"

	dup := Duplicate(original, now)

	assert.Empty(t, dup.ID)
	assert.True(t, dup.Timestamp.IsZero())
	assert.Equal(t, "2024-07-02", dup.Date)
	assert.Equal(t, original.Subject, dup.Subject)
	assert.Equal(t, original.Chapter, dup.Chapter)
	assert.Equal(t, original.Pages, dup.Pages)
	assert.Equal(t, original.Notes, dup.Notes)
	assert.Equal(t, original.StartTime, dup.StartTime)
	assert.Equal(t, original.EndTime, dup.EndTime)
	assert.Equal(t, original.BatchType, dup.BatchType)
	assert.Equal(t, original.Rate, dup.Rate)
	assert.Equal(t, "abc", original.ID)

	assert.Nil(t, Duplicate(nil, now))
}

// Worked example: evening rate is suggested, two hours earn 400.
func TestEveningSessionScenario(t *testing.T) {
	rates := &models.RateConfig{Morning: 150, Evening: 200, Default: 150}
	now := time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC)

	draft := NewDraft(now, rates)
	draft, err := ApplyBatchType(draft, models.BatchTypeEvening, rates, DraftState{})
	require.NoError(t, err)
	draft.StartTime = "18:00"
	draft.EndTime = "20:00"

	assert.Equal(t, 200.0, draft.Rate)

	saved, err := Prepare(draft)
	require.NoError(t, err)
	assert.Equal(t, 2.0, saved.Duration)
	assert.Equal(t, 400.0, saved.Earnings)
}
