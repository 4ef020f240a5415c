package accounting

import (
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

// Prepare validates a session before it is written and returns a copy with
// duration and earnings recomputed from its times and rate. Whatever
// duration or earnings the caller held are ignored.
func Prepare(session *models.Session) (*models.Session, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	duration := Duration(session.StartTime, session.EndTime)
	if duration <= 0 {
		return nil, ErrInvalidTimeRange
	}

	if !session.BatchType.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownBatchType, string(session.BatchType))
	}

	if _, err := ParseISODate(session.Date, time.UTC); err != nil {
		return nil, err
	}

	if math.IsNaN(session.Rate) || math.IsInf(session.Rate, 0) || session.Rate < 0 {
		return nil, ErrInvalidRate
	}

	out := session.Clone()
	out.Duration = duration
	out.Earnings = Earnings(duration, out.Rate)

	return out, nil
}

// Duplicate copies every descriptive field of a session into a new unsaved
// draft dated today
func Duplicate(session *models.Session, now time.Time) *models.Session {
	if session == nil {
		return nil
	}

	out := session.Clone()
	out.ID = ""
	out.Timestamp = time.Time{}
	out.Date = FormatISODate(now)

	return out
}
