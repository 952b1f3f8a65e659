package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paylog/backend/internal/domain/ledger"
)

// InMemorySummaryCache caches ledger summaries in process memory.
// Used when Redis is disabled, for single-instance deployments.
type InMemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]summaryEntry
	ttl     time.Duration
	now     func() time.Time
}

type summaryEntry struct {
	summary   ledger.Summary
	expiresAt time.Time
}

// NewInMemorySummaryCache creates an in-memory summary cache
func NewInMemorySummaryCache(ttl time.Duration) *InMemorySummaryCache {
	return &InMemorySummaryCache{
		entries: make(map[uuid.UUID]summaryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a cached summary, expiring stale entries lazily
func (c *InMemorySummaryCache) Get(_ context.Context, profileID uuid.UUID) (*ledger.Summary, bool) {
	c.mu.RLock()
	entry, ok := c.entries[profileID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, profileID)
		c.mu.Unlock()
		return nil, false
	}
	s := entry.summary
	return &s, true
}

// Set stores a summary with the configured TTL
func (c *InMemorySummaryCache) Set(_ context.Context, profileID uuid.UUID, summary ledger.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[profileID] = summaryEntry{
		summary:   summary,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops the cached summary for a profile
func (c *InMemorySummaryCache) Invalidate(_ context.Context, profileID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, profileID)
}
