package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages; a *rand.Rand
	// is not safe for concurrent use, so randMu guards it
	randMu sync.Mutex
	rand   *rand.Rand
	money  *accounting.MoneyFormatter
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	r := config.Rand
	if r == nil {
		// Create a new random source with the current time as seed
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	money := config.Money
	if money == nil {
		money = accounting.NewMoneyFormatter(accounting.DefaultCurrencySymbol, accounting.DefaultLocale)
	}

	return &service{
		rand:  r,
		money: money,
	}, nil
}

// GetErrorMessage returns a user-friendly explanation of a failed operation
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := input.Err
	switch {
	case err == nil:
		return &GetErrorMessageOutput{}, nil

	case permission.IsDenied(err):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindAccessDenied,
			Title:   "Access denied",
			Message: "Your account is not allowed to read or write your sessions. Fix the store's access rules, then try again.",
		}, nil

	case errors.Is(err, accounting.ErrInvalidTimeRange),
		errors.Is(err, accounting.ErrInvalidDate),
		errors.Is(err, accounting.ErrInvalidRate),
		errors.Is(err, accounting.ErrInvalidTime):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindValidation,
			Title:   "Check your session",
			Message: accounting.UserMessage(err),
		}, nil

	case errors.Is(err, models.ErrUnknownBatchType):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindValidation,
			Title:   "Check your session",
			Message: "Pick a batch: Morning, Evening or Custom.",
		}, nil

	case errors.Is(err, tracker.ErrInvalidRates):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindValidation,
			Title:   "Check your rates",
			Message: "Rates must be zero or more.",
		}, nil

	case errors.Is(err, accounting.ErrInvalidWindow), errors.Is(err, tracker.ErrUnknownRange):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindValidation,
			Title:   "Check your dates",
			Message: "Pick a preset range or a start date on or before the end date.",
		}, nil

	case errors.Is(err, tracker.ErrSessionNotFound):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindNotFound,
			Title:   "Session not found",
			Message: "That session no longer exists. It may have been deleted elsewhere.",
		}, nil

	case errors.Is(err, tracker.ErrConfirmationRequired):
		return &GetErrorMessageOutput{
			Kind:    ErrorKindConfirmation,
			Title:   "Confirm delete",
			Message: "Deleting a session cannot be undone. Confirm to continue.",
		}, nil
	}

	return &GetErrorMessageOutput{
		Kind:    ErrorKindUnavailable,
		Title:   "Something went wrong",
		Message: "Could not reach your data right now. Try again in a moment.",
	}, nil
}

// GetSavedMessage returns the confirmation shown after a session is saved
func (s *service) GetSavedMessage(ctx context.Context, input *GetSavedMessageInput) (*GetSavedMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneEncouraging
	}

	var messages []string
	switch tone {
	case ToneCelebration:
		messages = []string{
			"Another one in the books! 🎉",
			"Look at you go! 📚",
			"Cha-ching! Well earned.",
		}
	case ToneNeutral:
		messages = []string{
			"Saved.",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"Great work today!",
			"Every session counts. Keep it up!",
			"Your students are lucky to have you.",
			"Nice! That's progress.",
		}
	}

	title := "Session logged"
	if !input.Created {
		title = "Session updated"
	}

	session := input.Session
	subject := session.Subject
	if subject == "" {
		subject = "Session"
	}

	message := fmt.Sprintf("%s on %s: %sh at %s/h = %s",
		subject,
		accounting.FormatDate(session.Date),
		accounting.FormatHours(session.Duration),
		s.money.Format(session.Rate),
		s.money.Format(session.Earnings),
	)

	return &GetSavedMessageOutput{
		Title:   title,
		Message: message,
		Cheer:   messages[s.intn(len(messages))],
		Tone:    tone,
	}, nil
}

func (s *service) intn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(n)
}
