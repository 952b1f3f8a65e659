package cache

import (
	"go.uber.org/zap"

	"github.com/paylog/backend/internal/application/report"
	"github.com/paylog/backend/internal/infrastructure/config"
)

// NewSummaryCache builds the ledger summary cache the configuration
// asks for. With Redis enabled it tries Redis first and falls back to
// the in-memory cache with a warning when the connection fails;
// otherwise the in-memory cache is used directly.
func NewSummaryCache(cfg *config.Config, logger *zap.Logger) report.SummaryCache {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Redis.Enabled {
		redisCache, err := NewRedisSummaryCache(&cfg.Redis, cfg.Cache.SummaryTTL, logger)
		if err == nil {
			logger.Info("using Redis ledger summary cache",
				zap.String("addr", cfg.Redis.Addr()))
			return redisCache
		}
		logger.Warn("Redis unavailable, falling back to in-memory ledger summary cache. "+
			"Summaries will not be shared across instances.",
			zap.Error(err))
	}

	return NewInMemorySummaryCache(cfg.Cache.SummaryTTL)
}

// Interface checks
var (
	_ report.SummaryCache = (*RedisSummaryCache)(nil)
	_ report.SummaryCache = (*InMemorySummaryCache)(nil)
)
