package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tutortrack/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/tutortrack/internal/models"
)

// Repository defines the interface for a user's session collection
type Repository interface {
	// CreateSession stores a new session and assigns its ID and timestamp
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// UpdateSession replaces every field of an existing session except its ID
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)

	// DeleteSession removes a session permanently
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSession retrieves a single session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves every session a user owns
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
