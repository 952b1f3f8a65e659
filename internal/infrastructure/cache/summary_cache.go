package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/paylog/backend/internal/domain/ledger"
	"github.com/paylog/backend/internal/infrastructure/config"
)

const summaryKeyPrefix = "ledger:summary:"

// RedisSummaryCache caches per-profile ledger summaries in Redis.
// Suitable for distributed deployments where multiple instances share
// cache state. Cache failures degrade to recomputation, never to
// request errors.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSummaryCache connects to Redis and returns a summary cache
func NewRedisSummaryCache(cfg *config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// NewRedisSummaryCacheWithClient creates a cache over an existing client
func NewRedisSummaryCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSummaryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisSummaryCache{client: client, ttl: ttl, logger: logger}
}

func summaryKey(profileID uuid.UUID) string {
	return summaryKeyPrefix + profileID.String()
}

// Get retrieves a cached summary. A Redis error counts as a miss.
func (c *RedisSummaryCache) Get(ctx context.Context, profileID uuid.UUID) (*ledger.Summary, bool) {
	data, err := c.client.Get(ctx, summaryKey(profileID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("ledger summary cache read failed",
				zap.String("profile_id", profileID.String()),
				zap.Error(err))
		}
		return nil, false
	}

	var summary ledger.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.logger.Warn("ledger summary cache entry corrupt, dropping",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		c.client.Del(ctx, summaryKey(profileID))
		return nil, false
	}
	return &summary, true
}

// Set stores a summary with the configured TTL
func (c *RedisSummaryCache) Set(ctx context.Context, profileID uuid.UUID, summary ledger.Summary) {
	data, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("ledger summary marshal failed",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, summaryKey(profileID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("ledger summary cache write failed",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
	}
}

// Invalidate drops the cached summary for a profile
func (c *RedisSummaryCache) Invalidate(ctx context.Context, profileID uuid.UUID) {
	if err := c.client.Del(ctx, summaryKey(profileID)).Err(); err != nil {
		c.logger.Warn("ledger summary cache invalidation failed",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
	}
}

// Close closes the underlying Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
