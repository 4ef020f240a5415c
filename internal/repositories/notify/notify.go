// Package notify names the per-user Redis pub/sub channel that repositories
// publish to after every successful write.
package notify

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Topic says which part of a user's data changed
type Topic string

const (
	// TopicSessions is published after a session create, update or delete
	TopicSessions Topic = "sessions"

	// TopicRates is published after the rate document is written
	TopicRates Topic = "rates"
)

const channelPrefix = "tutortrack:changes:"

// Channel returns the change channel for a user
func Channel(userID string) string {
	return channelPrefix + userID
}

// Publish announces a change. The payload carries the topic only; listeners
// reload the full collection rather than applying a diff.
func Publish(ctx context.Context, client redis.UniversalClient, userID string, topic Topic) error {
	if err := client.Publish(ctx, Channel(userID), string(topic)).Err(); err != nil {
		return fmt.Errorf("failed to publish %s change: %w", topic, err)
	}
	return nil
}
