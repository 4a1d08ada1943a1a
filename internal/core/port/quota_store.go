package port

import (
	"context"
	"time"

	"adgate/internal/core/domain"
)

// QuotaStore persists per-identity daily consumption counters. It is an
// outbound port; implementations must make Consume an atomic
// compare-and-increment so that concurrent callers can never exceed limit.
type QuotaStore interface {
	// Consume resets the identity's counters if their last reset date is
	// before day, then increments the usage of resource and the identity's
	// task count if usage is below limit. A negative limit means unlimited.
	Consume(ctx context.Context, identityID string, resource domain.ResourceType, limit int64, day time.Time) (domain.Consumption, error)
	// Usage returns the identity's counters for day without mutating them.
	Usage(ctx context.Context, identityID string, day time.Time) (domain.Usage, error)
	// ResetDay zeroes every counter whose last reset date is before day and
	// returns the number of identities reset. It is idempotent.
	ResetDay(ctx context.Context, day time.Time) (int64, error)
}
