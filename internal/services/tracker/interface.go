package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tutortrack/internal/services/tracker Service

// Service defines the tutoring session operations offered to presentation layers
type Service interface {
	// NewSessionDraft returns the prefilled values for a new session
	NewSessionDraft(ctx context.Context, input *NewSessionDraftInput) (*NewSessionDraftOutput, error)

	// ChangeBatchType switches a draft's batch, following the rate when allowed
	ChangeBatchType(ctx context.Context, input *ChangeBatchTypeInput) (*ChangeBatchTypeOutput, error)

	// SaveSession validates a session and creates or updates it
	SaveSession(ctx context.Context, input *SaveSessionInput) (*SaveSessionOutput, error)

	// DuplicateSession returns an unsaved copy of a stored session dated today
	DuplicateSession(ctx context.Context, input *DuplicateSessionInput) (*DuplicateSessionOutput, error)

	// DeleteSession removes a stored session once the user has confirmed
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// GetSession returns one stored session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions returns the history, newest first, optionally searched
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetRates returns the user's default rates
	GetRates(ctx context.Context, input *GetRatesInput) (*GetRatesOutput, error)

	// UpdateRates replaces the user's default rates
	UpdateRates(ctx context.Context, input *UpdateRatesInput) (*UpdateRatesOutput, error)

	// GetDashboard computes the overview totals, chart and recent sessions
	GetDashboard(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error)

	// GenerateReport builds the report for a date window
	GenerateReport(ctx context.Context, input *GenerateReportInput) (*GenerateReportOutput, error)
}
