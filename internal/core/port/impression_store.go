package port

import (
	"context"
	"time"

	"adgate/internal/core/domain"
)

// ImpressionStore is the billing source of truth for served ads.
type ImpressionStore interface {
	// AdCounters returns the identity's ad counters as of day; counters
	// last reset before day read as zero (TotalAds is kept).
	AdCounters(ctx context.Context, identityID string, day time.Time) (domain.AdCounters, error)
	// RecordImpression atomically inserts imp, credits the campaign with
	// one impression and imp.Revenue, and bumps the identity's ad counters,
	// setting LastAdTaskCount to watermark. A token that was already
	// recorded is a no-op, which makes retries safe.
	RecordImpression(ctx context.Context, imp *domain.Impression, watermark int64) error
	// CompleteImpression marks the impression behind token as completed if
	// it belongs to identityID and is not completed yet. It reports whether
	// a transition happened.
	CompleteImpression(ctx context.Context, token, identityID string, at time.Time) (bool, error)
	// DailyStats aggregates impressions served on day.
	DailyStats(ctx context.Context, day time.Time) (domain.Stats, error)
	// ResetDay zeroes per-day ad counters last reset before day.
	ResetDay(ctx context.Context, day time.Time) (int64, error)
}
