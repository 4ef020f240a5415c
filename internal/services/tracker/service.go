package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/models"
	ratesRepo "github.com/KirkDiggler/tutortrack/internal/repositories/rates"
	sessionRepo "github.com/KirkDiggler/tutortrack/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	ratesRepo   ratesRepo.Repository
	clock       clock.Clock
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.RatesRepo == nil {
		return nil, ErrNilRatesRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		ratesRepo:   cfg.RatesRepo,
		clock:       cfg.Clock,
	}, nil
}

// NewSessionDraft returns the prefilled values for a new session
func (s *service) NewSessionDraft(ctx context.Context, input *NewSessionDraftInput) (*NewSessionDraftOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	rates, err := s.loadRates(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &NewSessionDraftOutput{
		Draft: accounting.NewDraft(s.clock.Now(), rates),
		Rates: rates,
	}, nil
}

// ChangeBatchType switches a draft's batch, following the rate when allowed
func (s *service) ChangeBatchType(ctx context.Context, input *ChangeBatchTypeInput) (*ChangeBatchTypeOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	rates, err := s.loadRates(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	draft, err := accounting.ApplyBatchType(input.Draft, input.BatchType, rates, input.State)
	if err != nil {
		return nil, err
	}

	return &ChangeBatchTypeOutput{Draft: draft}, nil
}

// SaveSession validates a session and creates or updates it. A rejected
// session is never written.
func (s *service) SaveSession(ctx context.Context, input *SaveSessionInput) (*SaveSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	prepared, err := accounting.Prepare(input.Session)
	if err != nil {
		return nil, err
	}

	if prepared.ID == "" {
		out, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
			UserID:  input.UserID,
			Session: prepared,
		})
		if err != nil {
			log.Printf("Error creating session for user %s: %v", input.UserID, err)
			return nil, fmt.Errorf("failed to create session: %w", err)
		}

		return &SaveSessionOutput{Session: out.Session, Created: true}, nil
	}

	out, err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		UserID:  input.UserID,
		Session: prepared,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, prepared.ID)
		}
		log.Printf("Error updating session %s for user %s: %v", prepared.ID, input.UserID, err)
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &SaveSessionOutput{Session: out.Session}, nil
}

// DuplicateSession returns an unsaved copy of a stored session dated today
func (s *service) DuplicateSession(ctx context.Context, input *DuplicateSessionInput) (*DuplicateSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	existing, err := s.GetSession(ctx, &GetSessionInput{
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &DuplicateSessionOutput{
		Draft: accounting.Duplicate(existing.Session, s.clock.Now()),
	}, nil
}

// DeleteSession removes a stored session once the user has confirmed
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	if !input.Confirmed {
		return nil, ErrConfirmationRequired
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, input.SessionID)
		}
		log.Printf("Error deleting session %s for user %s: %v", input.SessionID, input.UserID, err)
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	return &DeleteSessionOutput{SessionID: input.SessionID}, nil
}

// GetSession returns one stored session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		UserID:    input.UserID,
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, input.SessionID)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &GetSessionOutput{Session: session}, nil
}

// ListSessions returns the history, newest first, optionally searched
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	sessions, err := s.loadSessions(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	history := accounting.Search(accounting.SortForHistory(sessions), input.Query)
	if input.Limit > 0 && len(history) > input.Limit {
		history = history[:input.Limit]
	}

	return &ListSessionsOutput{
		Sessions: history,
		Totals:   accounting.Sum(history),
	}, nil
}

// GetRates returns the user's default rates
func (s *service) GetRates(ctx context.Context, input *GetRatesInput) (*GetRatesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	rates, err := s.loadRates(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetRatesOutput{Rates: rates}, nil
}

// UpdateRates replaces the user's default rates. Stored sessions keep the
// rate they were saved with.
func (s *service) UpdateRates(ctx context.Context, input *UpdateRatesInput) (*UpdateRatesOutput, error) {
	if input == nil || input.Rates == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	for _, rate := range []float64{input.Rates.Morning, input.Rates.Evening, input.Rates.Default} {
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			return nil, ErrInvalidRates
		}
	}

	rates := *input.Rates
	err := s.ratesRepo.SaveRates(ctx, &ratesRepo.SaveRatesInput{
		UserID: input.UserID,
		Rates:  &rates,
	})
	if err != nil {
		log.Printf("Error saving rates for user %s: %v", input.UserID, err)
		return nil, fmt.Errorf("failed to save rates: %w", err)
	}

	return &UpdateRatesOutput{Rates: &rates}, nil
}

// GetDashboard computes the overview totals, chart and recent sessions
func (s *service) GetDashboard(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	sessions, err := s.loadSessions(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		Dashboard: accounting.BuildDashboard(sessions, s.clock.Now()),
	}, nil
}

// GenerateReport builds the report for a date window
func (s *service) GenerateReport(ctx context.Context, input *GenerateReportInput) (*GenerateReportOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrMissingUserID
	}

	if err := input.Window.Validate(); err != nil {
		return nil, err
	}

	sessions, err := s.loadSessions(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	report, err := accounting.BuildReport(sessions, input.Window, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GenerateReportOutput{Report: report}, nil
}

func (s *service) loadSessions(ctx context.Context, userID string) ([]*models.Session, error) {
	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return out.Sessions, nil
}

func (s *service) loadRates(ctx context.Context, userID string) (*models.RateConfig, error) {
	out, err := s.ratesRepo.GetRates(ctx, &ratesRepo.GetRatesInput{
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rates: %w", err)
	}
	return out.Rates, nil
}
