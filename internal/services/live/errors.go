package live

// LiveError is a custom error type for live feed failures
type LiveError string

// Error implements the error interface
func (e LiveError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      LiveError = "config cannot be nil"
	ErrNilRedisClient LiveError = "redis client cannot be nil"
	ErrNilSessionRepo LiveError = "session repository cannot be nil"
	ErrNilRatesRepo   LiveError = "rates repository cannot be nil"
	ErrNilListener    LiveError = "listener cannot be nil"
	ErrMissingUserID  LiveError = "user ID is required"
	ErrNotLoaded      LiveError = "data has not loaded yet"
)
