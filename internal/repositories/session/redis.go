package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/common/uuid"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/repositories/notify"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

// ErrSessionNotFound is returned when a session does not exist for the user
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUID generates session IDs; defaults to random UUIDs
	UUID uuid.UUID

	// Clock stamps writes; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuid   uuid.UUID
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", permission.Classify(err))
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
		uuid:   cfg.UUID,
		clock:  cfg.Clock,
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}
	if repo.clock == nil {
		repo.clock = clock.New(nil)
	}

	return repo, nil
}

func sessionKey(userID, sessionID string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, userID, sessionID)
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

// CreateSession stores a new session under a freshly generated ID
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	session := input.Session.Clone()
	session.ID = r.uuid.NewUUID()
	session.Timestamp = r.clock.Now()

	if err := r.write(ctx, input.UserID, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	r.publish(ctx, input.UserID)

	return &CreateSessionOutput{Session: session}, nil
}

// UpdateSession overwrites an existing session, keeping its ID
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	if input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	if input.Session.ID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, sessionKey(input.UserID, input.Session.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", permission.Classify(err))
	}
	if exists == 0 {
		return nil, ErrSessionNotFound
	}

	session := input.Session.Clone()
	session.Timestamp = r.clock.Now()

	if err := r.write(ctx, input.UserID, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	r.publish(ctx, input.UserID)

	return &UpdateSessionOutput{Session: session}, nil
}

// write stores the document and then its index entry in one round trip.
// A plain pipeline keeps each command's own error: inside MULTI a NOPERM
// rejection is replaced by EXECABORT. A document without an index entry is
// never listed, and an index entry without a document is skipped by
// ListSessions.
func (r *redisRepository) write(ctx context.Context, userID string, session *models.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(userID, session.ID), sessionJSON, 0)
	pipe.ZAdd(ctx, userSessionsKey(userID), redis.Z{
		Score:  float64(session.Timestamp.UnixMilli()),
		Member: session.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return permission.Classify(err)
	}

	return nil
}

// DeleteSession removes the session document and its index entry
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return errors.New("input, user ID and session ID cannot be empty")
	}

	// Index entry first so a partly applied delete never lists the session
	pipe := r.client.Pipeline()
	pipe.ZRem(ctx, userSessionsKey(input.UserID), input.SessionID)
	delCmd := pipe.Del(ctx, sessionKey(input.UserID, input.SessionID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", permission.Classify(err))
	}

	if delCmd.Val() == 0 {
		return ErrSessionNotFound
	}

	r.publish(ctx, input.UserID)

	return nil
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.UserID == "" || input.SessionID == "" {
		return nil, errors.New("input, user ID and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.UserID, input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", permission.Classify(err))
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ListSessions retrieves every session for a user in write order
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, userSessionsKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", permission.Classify(err))
	}

	if len(sessionIDs) == 0 {
		return &ListSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Fetch all documents in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKey(input.UserID, id))
	}

	// redis.Nil from a missing document is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", permission.Classify(err))
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session was deleted between reading the index and the document
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], permission.Classify(err))
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}

		sessions = append(sessions, &session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// publish tells live subscribers to reload. The write already succeeded, so a
// failed notification is only logged.
func (r *redisRepository) publish(ctx context.Context, userID string) {
	if err := notify.Publish(ctx, r.client, userID, notify.TopicSessions); err != nil {
		log.Printf("Error notifying session change for user %s: %v", userID, err)
	}
}
