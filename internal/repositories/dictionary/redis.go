package dictionary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// Key prefix for cached lookups
	wordKeyPrefix = "word:"

	cacheHit  = "1"
	cacheMiss = "0"
)

// DefaultCacheTTL is how long a lookup result stays cached
const DefaultCacheTTL = 24 * time.Hour

// Config holds configuration for the Redis dictionary repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Source is the authoritative dictionary consulted on cache misses
	Source Source

	// CacheTTL overrides DefaultCacheTTL when positive
	CacheTTL time.Duration

	Logger zerolog.Logger
}

// redisRepository caches dictionary lookups in Redis in front of a Source
type redisRepository struct {
	client *redis.Client
	source Source
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedis creates a new Redis-backed dictionary cache
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Source == nil {
		return nil, errors.New("source cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		source: cfg.Source,
		ttl:    ttl,
		logger: cfg.Logger,
	}, nil
}

// IsValid reports whether word is a dictionary word, consulting the cache
// first. Cache errors are treated as misses so a Redis outage degrades to
// direct source lookups instead of failing submissions.
func (r *redisRepository) IsValid(ctx context.Context, word string) (bool, error) {
	key := fmt.Sprintf("%s%s", wordKeyPrefix, word)

	cached, err := r.client.Get(ctx, key).Result()
	if err == nil {
		return cached == cacheHit, nil
	}

	if !errors.Is(err, redis.Nil) {
		r.logger.Warn().Err(err).Str("word", word).Msg("dictionary cache read failed")
	}

	valid, err := r.source.Lookup(ctx, word)
	if err != nil {
		return false, fmt.Errorf("failed to look up word: %w", err)
	}

	value := cacheMiss
	if valid {
		value = cacheHit
	}

	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("word", word).Msg("dictionary cache write failed")
	}

	return valid, nil
}
