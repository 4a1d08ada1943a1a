package usecase

import (
	"context"
	"fmt"

	"adgate/internal/core/domain"
	"adgate/internal/core/policy"
	"adgate/internal/core/port"
)

// QuotaResult is the outcome of TryConsume.
type QuotaResult struct {
	Allowed bool
	// Remaining is what is left of today's limit after this call, or -1
	// when the resource is unlimited for the tier.
	Remaining  int64
	TasksToday int64
}

// QuotaLedger enforces per-tier daily limits on top of a QuotaStore.
type QuotaLedger struct {
	store  port.QuotaStore
	policy *policy.Policy
	clock  Clock
}

// NewQuotaLedger creates a ledger.
func NewQuotaLedger(store port.QuotaStore, pol *policy.Policy, clock Clock) *QuotaLedger {
	return &QuotaLedger{store: store, policy: pol, clock: clock}
}

// TryConsume atomically consumes one unit of resource for id if today's
// limit allows it. Counters last reset on an earlier day are reset first.
func (l *QuotaLedger) TryConsume(ctx context.Context, id domain.Identity, resource domain.ResourceType) (QuotaResult, error) {
	limit, err := l.policy.Limit(id.Tier, resource)
	if err != nil {
		return QuotaResult{}, err
	}
	c, err := l.store.Consume(ctx, id.ID, resource, limit, l.clock.Today())
	if err != nil {
		return QuotaResult{}, fmt.Errorf("quota store: %w", err)
	}

	res := QuotaResult{Allowed: c.Allowed, TasksToday: c.TasksToday}
	switch {
	case limit == policy.Unlimited:
		res.Remaining = policy.Unlimited
	case c.Allowed:
		res.Remaining = max(limit-c.Used, 0)
	}
	return res, nil
}

// Usage returns today's counters for identityID.
func (l *QuotaLedger) Usage(ctx context.Context, identityID string) (domain.Usage, error) {
	return l.store.Usage(ctx, identityID, l.clock.Today())
}
