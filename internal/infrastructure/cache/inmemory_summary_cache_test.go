package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paylog/backend/internal/domain/ledger"
)

func TestInMemorySummaryCache(t *testing.T) {
	ctx := context.Background()

	summary := ledger.Summary{
		TotalInvoiced:      decimal.NewFromInt(1000),
		TotalPayable:       decimal.NewFromInt(980),
		OutstandingBalance: decimal.NewFromInt(480),
		InvoiceCount:       1,
	}

	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewInMemorySummaryCache(time.Minute)

		got, ok := c.Get(ctx, uuid.New())

		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("set then get returns the summary", func(t *testing.T) {
		c := NewInMemorySummaryCache(time.Minute)
		profileID := uuid.New()

		c.Set(ctx, profileID, summary)
		got, ok := c.Get(ctx, profileID)

		assert.True(t, ok)
		assert.True(t, got.TotalInvoiced.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 1, got.InvoiceCount)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		c := NewInMemorySummaryCache(time.Minute)
		profileID := uuid.New()

		c.Set(ctx, profileID, summary)
		first, _ := c.Get(ctx, profileID)
		first.InvoiceCount = 99

		second, _ := c.Get(ctx, profileID)
		assert.Equal(t, 1, second.InvoiceCount)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := NewInMemorySummaryCache(time.Minute)
		profileID := uuid.New()

		base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return base }
		c.Set(ctx, profileID, summary)

		c.now = func() time.Time { return base.Add(2 * time.Minute) }
		got, ok := c.Get(ctx, profileID)

		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := NewInMemorySummaryCache(time.Minute)
		profileID := uuid.New()

		c.Set(ctx, profileID, summary)
		c.Invalidate(ctx, profileID)

		_, ok := c.Get(ctx, profileID)
		assert.False(t, ok)
	})
}
