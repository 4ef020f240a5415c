package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/repositories/notify"
	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const ratesKeyPrefix = "rates:"

// Config holds configuration for the Redis rates repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Defaults seeds new users; nil means models.DefaultRateConfig
	Defaults *models.RateConfig
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	defaults models.RateConfig
}

// NewRedis creates a new Redis-backed rates repository
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

	defaults := models.DefaultRateConfig()
	if cfg.Defaults != nil {
		defaults = cfg.Defaults
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		defaults: *defaults,
	}, nil
}

func ratesKey(userID string) string {
	return ratesKeyPrefix + userID
}

// GetRates retrieves the rate document, seeding it with defaults if absent
func (r *redisRepository) GetRates(ctx context.Context, input *GetRatesInput) (*GetRatesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	key := ratesKey(input.UserID)
	ratesJSON, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var rates models.RateConfig
		if err := json.Unmarshal([]byte(ratesJSON), &rates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rates: %w", err)
		}
		return &GetRatesOutput{Rates: &rates}, nil
	}

	if err != redis.Nil {
		return nil, fmt.Errorf("failed to get rates: %w", permission.Classify(err))
	}

	// First read for this user: write the defaults, unless another reader
	// beat us to it
	defaults := r.defaults
	defaultsJSON, err := json.Marshal(&defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rates: %w", err)
	}

	created, err := r.client.SetNX(ctx, key, defaultsJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create default rates: %w", permission.Classify(err))
	}

	if !created {
		return r.GetRates(ctx, input)
	}

	r.publish(ctx, input.UserID)

	return &GetRatesOutput{Rates: &defaults, Created: true}, nil
}

// SaveRates replaces the rate document
func (r *redisRepository) SaveRates(ctx context.Context, input *SaveRatesInput) error {
	if input == nil || input.Rates == nil {
		return errors.New("input and rates cannot be nil")
	}

	if input.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	ratesJSON, err := json.Marshal(input.Rates)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}

	if err := r.client.Set(ctx, ratesKey(input.UserID), ratesJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save rates: %w", permission.Classify(err))
	}

	r.publish(ctx, input.UserID)

	return nil
}

func (r *redisRepository) publish(ctx context.Context, userID string) {
	if err := notify.Publish(ctx, r.client, userID, notify.TopicRates); err != nil {
		log.Printf("Error notifying rates change for user %s: %v", userID, err)
	}
}
