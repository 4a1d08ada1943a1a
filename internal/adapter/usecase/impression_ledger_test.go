package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
	"adgate/internal/core/port/mocks"
	"adgate/internal/metrics"
)

func fixedClock() Clock {
	return NewClock(time.UTC, func() time.Time { return testNow })
}

func candidate(id int64, cpm string) Candidate {
	return Candidate{
		Campaign:     domain.Campaign{ID: id, ContentRef: "cdn://x", DurationSeconds: 30},
		EffectiveCPM: decimal.RequireFromString(cpm),
	}
}

func TestRecordImpressionFields(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	var got domain.Impression
	store.EXPECT().
		RecordImpression(mock.Anything, mock.AnythingOfType("*domain.Impression"), int64(3)).
		Run(func(_ context.Context, imp *domain.Impression, _ int64) { got = *imp }).
		Return(nil)

	l := NewImpressionLedger(store, nil, RetryConfig{Capacity: 1}, fixedClock(), metrics.New(nil), discardLogger())
	token := l.Record(context.Background(), "u1", candidate(4, "15"), 3)

	require.NotEmpty(t, token)
	assert.Equal(t, token, got.Token)
	assert.Equal(t, int64(4), got.CampaignID)
	assert.Equal(t, "u1", got.IdentityID)
	assert.Equal(t, "0.015", got.Revenue.String())
	assert.False(t, got.Completed)
	assert.True(t, got.ImpressionDate.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(0), l.Pending())
}

func TestRecordFailureIsReplayed(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	var replayed atomic.Value
	store.EXPECT().
		RecordImpression(mock.Anything, mock.Anything, int64(3)).
		Return(errors.New("deadlock detected")).Once()
	store.EXPECT().
		RecordImpression(mock.Anything, mock.Anything, int64(3)).
		Run(func(_ context.Context, imp *domain.Impression, _ int64) { replayed.Store(imp.Token) }).
		Return(nil).Once()

	l := NewImpressionLedger(store, nil, RetryConfig{Capacity: 4, MaxAttempts: 3}, fixedClock(), metrics.New(nil), discardLogger())
	token := l.Record(context.Background(), "u1", candidate(1, "10"), 3)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(1), l.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()

	require.Eventually(t, func() bool { return l.Pending() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, token, replayed.Load())
}

func TestRecordDeadLettersAfterRetries(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	sink := mocks.NewMockDeadLetterSink(t)
	cause := errors.New("store down")

	store.EXPECT().
		RecordImpression(mock.Anything, mock.Anything, int64(7)).
		Return(cause).Times(3)

	var published atomic.Bool
	sink.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("domain.Impression"), int64(7), cause).
		Run(func(context.Context, domain.Impression, int64, error) { published.Store(true) }).
		Return(nil).Once()

	l := NewImpressionLedger(store, sink, RetryConfig{Capacity: 4, MaxAttempts: 2}, fixedClock(), metrics.New(nil), discardLogger())
	l.Record(context.Background(), "u1", candidate(1, "10"), 7)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()

	require.Eventually(t, published.Load, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return l.Pending() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRecordQueueFullGoesStraightToDeadLetter(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	sink := mocks.NewMockDeadLetterSink(t)
	store.EXPECT().RecordImpression(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("down"))
	sink.EXPECT().Publish(mock.Anything, mock.Anything, int64(2), mock.Anything).Return(nil).Once()

	l := NewImpressionLedger(store, sink, RetryConfig{Capacity: 1, MaxAttempts: 1}, fixedClock(), metrics.New(nil), discardLogger())
	first := l.Record(context.Background(), "u1", candidate(1, "10"), 1)
	second := l.Record(context.Background(), "u1", candidate(1, "10"), 2)

	assert.NotEqual(t, first, second)
	assert.Equal(t, int64(1), l.Pending())
}

func TestRunDeadLettersQueuedOnShutdown(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	sink := mocks.NewMockDeadLetterSink(t)
	store.EXPECT().RecordImpression(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("down")).Times(3)

	var published []string
	sink.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("domain.Impression"), mock.Anything, mock.Anything).
		Run(func(ctx context.Context, imp domain.Impression, _ int64, cause error) {
			assert.NoError(t, ctx.Err())
			assert.ErrorIs(t, cause, errDispatcherStopped)
			published = append(published, imp.Token)
		}).
		Return(nil).Times(3)

	l := NewImpressionLedger(store, sink, RetryConfig{Capacity: 8, MaxAttempts: 3}, fixedClock(), metrics.New(nil), discardLogger())
	var tokens []string
	for i := int64(1); i <= 3; i++ {
		tokens = append(tokens, l.Record(context.Background(), "u1", candidate(1, "10"), i))
	}
	require.Equal(t, int64(3), l.Pending())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, l.Run(ctx))

	assert.Equal(t, tokens, published)
	assert.Zero(t, l.Pending())
}

func TestCompleteImpression(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	c := e.addCampaign(t, "c", 10, domain.TierFree)

	token := e.ledger.Record(ctx, "u1", Candidate{Campaign: c, EffectiveCPM: decimal.NewFromInt(10)}, 3)

	assert.False(t, e.ledger.Complete(ctx, token, "someone-else"))
	assert.False(t, e.ledger.Complete(ctx, "no-such-token", "u1"))
	assert.False(t, e.ledger.Complete(ctx, "", "u1"))
	assert.True(t, e.ledger.Complete(ctx, token, "u1"))
	assert.False(t, e.ledger.Complete(ctx, token, "u1"))

	got, err := e.store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CumulativeCompletions)
	assert.Equal(t, int64(1), got.CumulativeImpressions)

	imp, ok := e.store.Impression(token)
	require.True(t, ok)
	assert.True(t, imp.Completed)
	require.NotNil(t, imp.CompletedAt)
}

func TestCompleteImpressionStoreError(t *testing.T) {
	store := mocks.NewMockImpressionStore(t)
	store.EXPECT().
		CompleteImpression(mock.Anything, "tok", "u1", mock.AnythingOfType("time.Time")).
		Return(false, errors.New("down"))

	l := NewImpressionLedger(store, nil, RetryConfig{Capacity: 1}, fixedClock(), metrics.New(nil), discardLogger())
	assert.False(t, l.Complete(context.Background(), "tok", "u1"))
}

func TestRecordConcurrentNoLostUpdates(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	c := e.addCampaign(t, "c", 10, domain.TierFree)
	cand := Candidate{Campaign: c, EffectiveCPM: decimal.NewFromInt(10)}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			e.ledger.Record(ctx, "u1", cand, 1)
		}()
	}
	wg.Wait()

	got, err := e.store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.CumulativeImpressions)
	assert.Equal(t, "1", got.CumulativeRevenue.String())
	assert.Equal(t, n, e.store.ImpressionCount())
}
