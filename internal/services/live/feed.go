// Package live keeps an in-memory view of a user's data in step with the
// store. Every change notification triggers a reload of the whole collection,
// which is handed to the listener as a replacement, never as a diff.
package live

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/repositories/notify"
	ratesRepo "github.com/KirkDiggler/tutortrack/internal/repositories/rates"
	sessionRepo "github.com/KirkDiggler/tutortrack/internal/repositories/session"
	"github.com/redis/go-redis/v9"
)

// Listener receives full snapshots. Calls are made from a single goroutine
// per subscription.
type Listener interface {
	// ReplaceSessions hands over the complete session collection
	ReplaceSessions(sessions []*models.Session)

	// ReplaceRates hands over the complete rate document
	ReplaceRates(rates *models.RateConfig)

	// Fail reports a load error; permission failures wrap permission.ErrDenied
	Fail(err error)
}

// Config holds configuration for the feed
type Config struct {
	// Redis client used for the change channel
	RedisClient *redis.Client

	// Repositories the snapshots are loaded from
	SessionRepo sessionRepo.Repository
	RatesRepo   ratesRepo.Repository
}

// Feed turns change notifications into snapshot replacements
type Feed struct {
	client      *redis.Client
	sessionRepo sessionRepo.Repository
	ratesRepo   ratesRepo.Repository
}

// New creates a new feed
func New(cfg *Config) (*Feed, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.RatesRepo == nil {
		return nil, ErrNilRatesRepo
	}

	return &Feed{
		client:      cfg.RedisClient,
		sessionRepo: cfg.SessionRepo,
		ratesRepo:   cfg.RatesRepo,
	}, nil
}

// Subscription is a running feed for one user
type Subscription struct {
	cancel   context.CancelFunc
	pubsub   *redis.PubSub
	done     chan struct{}
	stopOnce sync.Once
}

// Subscribe starts listening for changes to the user's data. The listener
// first receives the current sessions and rates, then a fresh snapshot after
// every change. Cancelling ctx or calling Stop ends the subscription.
func (f *Feed) Subscribe(ctx context.Context, userID string, listener Listener) (*Subscription, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	if listener == nil {
		return nil, ErrNilListener
	}

	pubsub := f.client.Subscribe(ctx, notify.Channel(userID))

	// Wait for confirmation so no change between now and the first load is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to changes: %w", permission.Classify(err))
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		pubsub: pubsub,
		done:   make(chan struct{}),
	}

	go f.run(subCtx, sub, userID, listener)

	return sub, nil
}

// Stop ends the subscription and waits for the delivery goroutine to exit.
// No listener method runs after Stop returns.
func (s *Subscription) Stop() {
	s.shutdown()
	<-s.done
}

func (s *Subscription) shutdown() {
	s.stopOnce.Do(func() {
		s.cancel()
		if err := s.pubsub.Close(); err != nil {
			log.Printf("Error closing change subscription: %v", err)
		}
	})
}

// Done is closed once the subscription has stopped delivering
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (f *Feed) run(ctx context.Context, sub *Subscription, userID string, listener Listener) {
	defer close(sub.done)
	defer sub.shutdown()

	messages := sub.pubsub.Channel()

	f.reloadSessions(ctx, userID, listener)
	f.reloadRates(ctx, userID, listener)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			switch notify.Topic(msg.Payload) {
			case notify.TopicSessions:
				f.reloadSessions(ctx, userID, listener)
			case notify.TopicRates:
				f.reloadRates(ctx, userID, listener)
			default:
				f.reloadSessions(ctx, userID, listener)
				f.reloadRates(ctx, userID, listener)
			}
		}
	}
}

func (f *Feed) reloadSessions(ctx context.Context, userID string, listener Listener) {
	out, err := f.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{UserID: userID})
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Printf("Error reloading sessions for user %s: %v", userID, err)
		listener.Fail(fmt.Errorf("failed to load sessions: %w", err))
		return
	}
	listener.ReplaceSessions(out.Sessions)
}

func (f *Feed) reloadRates(ctx context.Context, userID string, listener Listener) {
	out, err := f.ratesRepo.GetRates(ctx, &ratesRepo.GetRatesInput{UserID: userID})
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Printf("Error reloading rates for user %s: %v", userID, err)
		listener.Fail(fmt.Errorf("failed to load rates: %w", err))
		return
	}
	listener.ReplaceRates(out.Rates)
}
