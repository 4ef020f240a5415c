package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorKind groups failures by what the user can do about them
type ErrorKind string

const (
	// ErrorKindAccessDenied means the store refused access; the user must fix permissions
	ErrorKindAccessDenied ErrorKind = "access_denied"

	// ErrorKindValidation means the user's input was rejected
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindNotFound means the session no longer exists
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindConfirmation means the action needs an explicit confirmation
	ErrorKindConfirmation ErrorKind = "confirmation"

	// ErrorKindUnavailable is everything else
	ErrorKindUnavailable ErrorKind = "unavailable"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a tracker operation
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Kind    ErrorKind
	Title   string
	Message string
}

// GetSavedMessageInput contains parameters for the save confirmation
type GetSavedMessageInput struct {
	Session *models.Session

	// Created is false when an existing session was edited
	Created bool

	// PreferredTone is the preferred tone for the cheer line (optional)
	PreferredTone MessageTone
}

// GetSavedMessageOutput contains the save confirmation
type GetSavedMessageOutput struct {
	Title   string
	Message string

	// Cheer is a short randomly chosen line in the requested tone
	Cheer string
	Tone  MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks cheer lines; defaults to a time-seeded source
	Rand *rand.Rand

	// Money formats amounts; defaults to rupees
	Money *accounting.MoneyFormatter
}
