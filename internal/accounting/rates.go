package accounting

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

// noon is the hour from which new sessions default to the evening batch
const noon = 12

// ResolveRate maps a batch type to the matching default rate. A nil config
// falls back to the built-in defaults.
func ResolveRate(batch models.BatchType, rates *models.RateConfig) (float64, error) {
	if rates == nil {
		rates = models.DefaultRateConfig()
	}

	switch batch {
	case models.BatchTypeMorning:
		return rates.Morning, nil
	case models.BatchTypeEvening:
		return rates.Evening, nil
	case models.BatchTypeCustom:
		return rates.Default, nil
	}

	return 0, fmt.Errorf("%w: %q", models.ErrUnknownBatchType, string(batch))
}

// SuggestBatchType picks the batch a new session most likely belongs to
func SuggestBatchType(now time.Time) models.BatchType {
	if now.Hour() < noon {
		return models.BatchTypeMorning
	}
	return models.BatchTypeEvening
}

// DraftState describes the form a draft is being edited in
type DraftState struct {
	// Editing is true when the draft is an already saved session
	Editing bool

	// RateEdited is true once the user typed a rate by hand
	RateEdited bool
}

// NewDraft returns the starting values for the "add session" form
func NewDraft(now time.Time, rates *models.RateConfig) *models.Session {
	batch := SuggestBatchType(now)
	// suggested batches are always resolvable
	rate, _ := ResolveRate(batch, rates)

	return &models.Session{
		Date:      FormatISODate(now),
		BatchType: batch,
		Rate:      rate,
	}
}

// ApplyBatchType changes the batch of a draft. The rate follows the new batch
// only for a new session whose rate the user has not touched.
func ApplyBatchType(draft *models.Session, batch models.BatchType, rates *models.RateConfig, state DraftState) (*models.Session, error) {
	if draft == nil {
		return nil, ErrNilSession
	}

	rate, err := ResolveRate(batch, rates)
	if err != nil {
		return nil, err
	}

	out := draft.Clone()
	out.BatchType = batch
	if !state.Editing && !state.RateEdited {
		out.Rate = rate
	}

	return out, nil
}
