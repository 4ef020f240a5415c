// Package permission classifies backend access failures so callers can show
// a distinct "fix your permissions" state instead of a generic error.
package permission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDenied is returned when the store rejects an operation for lack of
// permission
var ErrDenied = errors.New("permission denied")

// deniedPrefixes are the Redis error prefixes that mean the connection is not
// allowed to run the command
var deniedPrefixes = []string{"NOPERM", "NOAUTH", "WRONGPASS"}

// Classify wraps err with ErrDenied when it is a permission failure and
// returns it unchanged otherwise
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrDenied) {
		return err
	}

	msg := err.Error()
	for _, prefix := range deniedPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return fmt.Errorf("%w: %s", ErrDenied, msg)
		}
	}

	return err
}

// IsDenied reports whether err is, or wraps, a permission failure
func IsDenied(err error) bool {
	return errors.Is(Classify(err), ErrDenied)
}
