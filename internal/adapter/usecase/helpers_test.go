package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adgate/internal/adapter/memory"
	"adgate/internal/core/domain"
	"adgate/internal/core/policy"
	"adgate/internal/core/pricing"
	"adgate/internal/metrics"
	"adgate/internal/targeting"
)

// Tuesday morning: time-of-day, weekday and free-tier factors are all 1.0,
// so a US identity sees exactly 1.5 x base CPM.
var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.Default()
	require.NoError(t, err)
	return p
}

type testEnv struct {
	now      time.Time
	clock    Clock
	policy   *policy.Policy
	store    *memory.Store
	quota    *QuotaLedger
	selector *Selector
	ledger   *ImpressionLedger
	admin    *CampaignService
	gate     *AdmissionGate
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	e := &testEnv{now: testNow, store: memory.New(), policy: defaultPolicy(t)}
	e.clock = NewClock(time.UTC, func() time.Time { return e.now })

	rules, err := targeting.New()
	require.NoError(t, err)
	m := metrics.New(nil)
	log := discardLogger()

	e.quota = NewQuotaLedger(e.store, e.policy, e.clock)
	e.selector = NewSelector(e.store, pricing.NewOptimizer(e.policy.Pricing()), rules, e.policy.Fallback(), m, log)
	e.ledger = NewImpressionLedger(e.store, nil, RetryConfig{Capacity: 8, MaxAttempts: 1}, e.clock, m, log)
	e.admin = NewCampaignService(e.store, rules, e.clock, log)
	e.gate = NewAdmissionGate(e.quota, e.selector, e.ledger, e.store, e.policy, e.clock, m, log)
	return e
}

func (e *testEnv) addCampaign(t *testing.T, name string, baseCPM int64, tiers ...domain.Tier) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		Name:            name,
		BaseCPM:         decimal.NewFromInt(baseCPM),
		DurationSeconds: 30,
		TargetTiers:     tiers,
		ContentRef:      "cdn://" + name,
		ScheduleStart:   testNow.AddDate(0, 0, -1),
		Budget:          decimal.NewFromInt(100),
	}
	require.NoError(t, e.admin.CreateCampaign(context.Background(), &c))
	return c
}

func request(id string, tier domain.Tier, resource domain.ResourceType) domain.AdmissionRequest {
	return domain.AdmissionRequest{
		Identity: domain.Identity{ID: id, Tier: tier, Country: "US"},
		Resource: resource,
	}
}
