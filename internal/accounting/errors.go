package accounting

import "errors"

// AccountingError is a custom error type for session accounting failures
type AccountingError string

// Error implements the error interface
func (e AccountingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilSession       AccountingError = "session cannot be nil"
	ErrInvalidTimeRange AccountingError = "end time must be after start time"
	ErrInvalidTime      AccountingError = "time of day must be HH:MM"
	ErrInvalidDate      AccountingError = "date must be YYYY-MM-DD"
	ErrInvalidRate      AccountingError = "rate must be a non-negative number"
	ErrInvalidWindow    AccountingError = "invalid date window"
)

// UserMessage turns a validation error into the sentence shown next to the
// form. Errors it does not know are returned as-is.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTimeRange):
		return "Please check start and end times. End time must be after start time."
	case errors.Is(err, ErrInvalidDate):
		return "Please pick a valid date."
	case errors.Is(err, ErrInvalidRate):
		return "Please enter a valid hourly rate."
	}
	return err.Error()
}
