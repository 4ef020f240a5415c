package tracker

import (
	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/models"
	ratesRepo "github.com/KirkDiggler/tutortrack/internal/repositories/rates"
	sessionRepo "github.com/KirkDiggler/tutortrack/internal/repositories/session"
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	RatesRepo   ratesRepo.Repository

	// Clock supplies "now" for drafts, dashboards and report windows
	Clock clock.Clock
}

// NewSessionDraftInput contains parameters for starting a new session
type NewSessionDraftInput struct {
	UserID string
}

// NewSessionDraftOutput contains the prefilled draft and the rates used
type NewSessionDraftOutput struct {
	Draft *models.Session
	Rates *models.RateConfig
}

// ChangeBatchTypeInput contains parameters for switching a draft's batch
type ChangeBatchTypeInput struct {
	UserID    string
	Draft     *models.Session
	BatchType models.BatchType
	State     accounting.DraftState
}

// ChangeBatchTypeOutput contains the updated draft
type ChangeBatchTypeOutput struct {
	Draft *models.Session
}

// SaveSessionInput contains parameters for saving a session. An empty
// Session.ID creates a new session.
type SaveSessionInput struct {
	UserID  string
	Session *models.Session
}

// SaveSessionOutput contains the stored session
type SaveSessionOutput struct {
	Session *models.Session
	Created bool
}

// DuplicateSessionInput contains parameters for duplicating a session
type DuplicateSessionInput struct {
	UserID    string
	SessionID string
}

// DuplicateSessionOutput contains the unsaved copy
type DuplicateSessionOutput struct {
	Draft *models.Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	UserID    string
	SessionID string

	// Confirmed must be set once the user has accepted the prompt
	Confirmed bool
}

// DeleteSessionOutput contains the result of deleting a session
type DeleteSessionOutput struct {
	SessionID string
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	UserID    string
	SessionID string
}

// GetSessionOutput contains the requested session
type GetSessionOutput struct {
	Session *models.Session
}

// ListSessionsInput contains parameters for listing the history
type ListSessionsInput struct {
	UserID string

	// Query filters by subject, chapter, batch type or date
	Query string

	// Limit caps the result when positive
	Limit int
}

// ListSessionsOutput contains sessions in history order
type ListSessionsOutput struct {
	Sessions []*models.Session

	// Totals covers the listed sessions
	Totals models.Totals
}

// GetRatesInput contains parameters for retrieving rates
type GetRatesInput struct {
	UserID string
}

// GetRatesOutput contains the user's rates
type GetRatesOutput struct {
	Rates *models.RateConfig
}

// UpdateRatesInput contains parameters for replacing rates
type UpdateRatesInput struct {
	UserID string
	Rates  *models.RateConfig
}

// UpdateRatesOutput contains the stored rates
type UpdateRatesOutput struct {
	Rates *models.RateConfig
}

// GetDashboardInput contains parameters for the overview
type GetDashboardInput struct {
	UserID string
}

// GetDashboardOutput contains the overview
type GetDashboardOutput struct {
	Dashboard *models.Dashboard
}

// GenerateReportInput contains parameters for a report
type GenerateReportInput struct {
	UserID string
	Window accounting.Window
}

// GenerateReportOutput contains the report
type GenerateReportOutput struct {
	Report *models.Report
}
