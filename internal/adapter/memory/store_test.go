package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
)

var day = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func newCampaign(t *testing.T, s *Store) domain.Campaign {
	t.Helper()
	c := domain.Campaign{
		Name:          "c",
		BaseCPM:       decimal.NewFromInt(10),
		TargetTiers:   []domain.Tier{domain.TierFree},
		ScheduleStart: day.AddDate(0, 0, -1),
		Budget:        decimal.NewFromInt(100),
		Status:        domain.CampaignActive,
	}
	require.NoError(t, s.CreateCampaign(context.Background(), &c))
	return c
}

func TestConsumeStopsAtLimit(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := s.Consume(ctx, "u1", domain.ResourceText, 5, day)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, int64(i), res.Used)
		assert.Equal(t, int64(i), res.TasksToday)
	}
	res, err := s.Consume(ctx, "u1", domain.ResourceText, 5, day)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(5), res.TasksToday)

	// another resource type still counts towards tasks
	res, err = s.Consume(ctx, "u1", domain.ResourceImage, -1, day)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(6), res.TasksToday)
}

func TestConsumeConcurrentNeverExceedsLimit(t *testing.T) {
	s := New()
	const limit = 25

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.Consume(context.Background(), "u1", domain.ResourceCode, limit, day)
			if err == nil && res.Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(limit), allowed.Load())
}

func TestConsumeResetsOnNewDay(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Consume(ctx, "u1", domain.ResourceText, 1, day)
	require.NoError(t, err)
	res, err := s.Consume(ctx, "u1", domain.ResourceText, 1, day)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	next := day.AddDate(0, 0, 1)
	res, err = s.Consume(ctx, "u1", domain.ResourceText, 1, next)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(1), res.TasksToday)
}

func TestResetDayIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.Consume(ctx, "u1", domain.ResourceText, 5, day)
	require.NoError(t, err)

	next := day.AddDate(0, 0, 1)
	n, err := s.ResetDay(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.ResetDay(ctx, next)
	require.NoError(t, err)
	assert.Zero(t, n)

	u, err := s.Usage(ctx, "u1", next)
	require.NoError(t, err)
	assert.Zero(t, u.TasksToday)
}

func TestRecordImpressionConcurrent(t *testing.T) {
	s := New()
	c := newCampaign(t, s)
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			imp := &domain.Impression{
				Token:          fmt.Sprintf("tok-%d", i),
				CampaignID:     c.ID,
				IdentityID:     fmt.Sprintf("u%d", i%7),
				EffectiveCPM:   decimal.NewFromInt(10),
				Revenue:        decimal.RequireFromString("0.01"),
				ImpressionDate: day,
			}
			assert.NoError(t, s.RecordImpression(context.Background(), imp, 1))
		}(i)
	}
	wg.Wait()

	got, err := s.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.CumulativeImpressions)
	assert.True(t, decimal.NewFromInt(1).Equal(got.CumulativeRevenue), "revenue %s", got.CumulativeRevenue)
	assert.Equal(t, n, s.ImpressionCount())
}

func TestRecordImpressionIdempotentByToken(t *testing.T) {
	s := New()
	c := newCampaign(t, s)
	ctx := context.Background()

	imp := domain.Impression{Token: "t1", CampaignID: c.ID, IdentityID: "u1", Revenue: decimal.RequireFromString("0.01"), ImpressionDate: day}
	first := imp
	require.NoError(t, s.RecordImpression(ctx, &first, 3))
	second := imp
	require.NoError(t, s.RecordImpression(ctx, &second, 3))
	assert.Equal(t, first.ID, second.ID)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CumulativeImpressions)

	counters, err := s.AdCounters(ctx, "u1", day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters.AdsToday)
	assert.Equal(t, int64(3), counters.LastAdTaskCount)
}

func TestRecordImpressionReplayFromEarlierDay(t *testing.T) {
	s := New()
	c := newCampaign(t, s)
	ctx := context.Background()
	today := day.AddDate(0, 0, 1)

	require.NoError(t, s.RecordImpression(ctx, &domain.Impression{
		Token: "today", CampaignID: c.ID, IdentityID: "u1",
		Revenue: decimal.RequireFromString("0.01"), ImpressionDate: today,
	}, 3))
	require.NoError(t, s.RecordImpression(ctx, &domain.Impression{
		Token: "yesterday", CampaignID: c.ID, IdentityID: "u1",
		Revenue: decimal.RequireFromString("0.01"), ImpressionDate: day,
	}, 40))

	counters, err := s.AdCounters(ctx, "u1", today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters.AdsToday)
	assert.Equal(t, int64(3), counters.LastAdTaskCount)
	assert.Equal(t, int64(2), counters.TotalAds)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.CumulativeImpressions)

	st, err := s.DailyStats(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.ImpressionsToday)
}

func TestRecordImpressionUnknownCampaign(t *testing.T) {
	s := New()
	err := s.RecordImpression(context.Background(), &domain.Impression{Token: "t", CampaignID: 42, ImpressionDate: day}, 0)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestCompleteImpression(t *testing.T) {
	s := New()
	c := newCampaign(t, s)
	ctx := context.Background()

	imp := &domain.Impression{Token: "t1", CampaignID: c.ID, IdentityID: "u1", Revenue: decimal.RequireFromString("0.01"), ImpressionDate: day}
	require.NoError(t, s.RecordImpression(ctx, imp, 1))

	ok, err := s.CompleteImpression(ctx, "t1", "someone-else", day)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CompleteImpression(ctx, "missing", "u1", day)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CompleteImpression(ctx, "t1", "u1", day.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CompleteImpression(ctx, "t1", "u1", day.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CumulativeCompletions)

	stored, ok := s.Impression("t1")
	require.True(t, ok)
	require.NotNil(t, stored.CompletedAt)
	assert.Equal(t, day.Add(time.Minute), *stored.CompletedAt)

	st, err := s.DailyStats(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.ImpressionsToday)
	assert.Equal(t, int64(1), st.CompletionsToday)
}

func TestListForTierExcludesFallback(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := newCampaign(t, s)
	b := domain.Campaign{Name: "b", TargetTiers: []domain.Tier{domain.TierBasic}, Status: domain.CampaignActive}
	require.NoError(t, s.CreateCampaign(ctx, &b))

	free, err := s.ListForTier(ctx, domain.TierFree)
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, a.ID, free[0].ID)

	n, err := s.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, s.SetStatus(ctx, a.ID, domain.CampaignPaused))
	n, err = s.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, s.SetStatus(ctx, 99, domain.CampaignPaused), domain.ErrCampaignNotFound)
}

func TestCompleteIfActive(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := newCampaign(t, s)
	b := newCampaign(t, s)
	require.NoError(t, s.SetStatus(ctx, b.ID, domain.CampaignCancelled))

	done, err := s.CompleteIfActive(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, done)
	done, err = s.CompleteIfActive(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = s.CompleteIfActive(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, done)
	got, err := s.GetCampaign(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCancelled, got.Status)

	_, err = s.CompleteIfActive(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
