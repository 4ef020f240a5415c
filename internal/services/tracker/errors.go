package tracker

// TrackerError is a custom error type for tracker operations
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            TrackerError = "config cannot be nil"
	ErrNilSessionRepo       TrackerError = "session repository cannot be nil"
	ErrNilRatesRepo         TrackerError = "rates repository cannot be nil"
	ErrNilClock             TrackerError = "clock cannot be nil"
	ErrNilInput             TrackerError = "input cannot be nil"
	ErrMissingUserID        TrackerError = "user ID is required"
	ErrMissingSessionID     TrackerError = "session ID is required"
	ErrSessionNotFound      TrackerError = "session not found"
	ErrConfirmationRequired TrackerError = "delete must be confirmed"
	ErrInvalidRates         TrackerError = "rates must be non-negative numbers"
	ErrUnknownRange         TrackerError = "unknown report range"
)
