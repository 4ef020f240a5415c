package session

import "github.com/KirkDiggler/tutortrack/internal/models"

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	UserID  string
	Session *models.Session
}

// CreateSessionOutput contains the stored session with its new ID
type CreateSessionOutput struct {
	Session *models.Session
}

// UpdateSessionInput contains parameters for updating a session.
// Session.ID selects the document.
type UpdateSessionInput struct {
	UserID  string
	Session *models.Session
}

// UpdateSessionOutput contains the stored session
type UpdateSessionOutput struct {
	Session *models.Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	UserID    string
	SessionID string
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	UserID    string
	SessionID string
}

// ListSessionsInput contains parameters for listing a user's sessions
type ListSessionsInput struct {
	UserID string
}

// ListSessionsOutput contains every stored session in write order
type ListSessionsOutput struct {
	Sessions []*models.Session
}
