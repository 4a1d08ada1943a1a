package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
	"adgate/internal/dispatch"
	"adgate/internal/metrics"
)

// RetryConfig controls how failed impression writes are replayed.
type RetryConfig struct {
	Capacity    int
	MaxAttempts int
	Backoff     time.Duration
}

var errDispatcherStopped = errors.New("retry dispatcher stopped")

type pendingImpression struct {
	imp       domain.Impression
	watermark int64
	cause     error
}

// ImpressionLedger records served ads and their completions. Writes that
// fail are replayed in the background by a single dispatcher; replays are
// safe because the store ignores tokens it already holds.
type ImpressionLedger struct {
	store      port.ImpressionStore
	deadLetter port.DeadLetterSink
	retry      *dispatch.Queue[pendingImpression]
	cfg        RetryConfig
	clock      Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewImpressionLedger creates a ledger. deadLetter may be nil, in which
// case impressions that exhaust their retries are only logged.
func NewImpressionLedger(
	store port.ImpressionStore,
	deadLetter port.DeadLetterSink,
	cfg RetryConfig,
	clock Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ImpressionLedger {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	l := &ImpressionLedger{
		store:      store,
		deadLetter: deadLetter,
		cfg:        cfg,
		clock:      clock,
		metrics:    m,
		logger:     logger.With(slog.String("component", "impression_ledger")),
	}
	l.retry = dispatch.New(cfg.Capacity, l.replay, l.logger, dispatch.WithDrain(l.abandon))
	return l
}

// Run replays failed writes until ctx is cancelled. Impressions still
// queued at that point are dead-lettered.
func (l *ImpressionLedger) Run(ctx context.Context) error {
	return l.retry.Run(ctx)
}

// Pending returns the number of impressions waiting to be replayed.
func (l *ImpressionLedger) Pending() int64 {
	return l.retry.Pending()
}

// Counters returns the identity's ad counters for today.
func (l *ImpressionLedger) Counters(ctx context.Context, identityID string) (domain.AdCounters, error) {
	return l.store.AdCounters(ctx, identityID, l.clock.Today())
}

// Record books one impression of cand for identityID and returns its
// tracking token. watermark is the identity's task count including the
// unit being admitted.
//
// The token is returned even if the write fails: the ad is still served
// and the impression is queued for replay.
func (l *ImpressionLedger) Record(ctx context.Context, identityID string, cand Candidate, watermark int64) string {
	now := l.clock.Now()
	imp := domain.Impression{
		Token:          uuid.NewString(),
		CampaignID:     cand.Campaign.ID,
		IdentityID:     identityID,
		EffectiveCPM:   cand.EffectiveCPM,
		Revenue:        domain.RevenueForCPM(cand.EffectiveCPM),
		ImpressionDate: domain.Day(now, l.clock.Location()),
		CreatedAt:      now.UTC(),
	}

	if err := l.store.RecordImpression(ctx, &imp, watermark); err != nil {
		l.metrics.RecordFailures.Inc()
		l.logger.Error("record impression failed, queued for retry",
			slog.String("token", imp.Token),
			slog.Int64("campaign_id", imp.CampaignID),
			slog.String("identity_id", identityID),
			slog.Any("error", err))
		p := pendingImpression{imp: imp, watermark: watermark, cause: err}
		if !l.retry.Offer(p) {
			l.logger.Warn("retry queue full", slog.String("token", imp.Token))
			if dlErr := l.publishDeadLetter(ctx, p); dlErr != nil {
				l.logger.Error("dead letter failed", slog.String("token", imp.Token), slog.Any("error", dlErr))
			}
		}
		return imp.Token
	}

	l.observeRecorded(imp, cand.Fallback)
	return imp.Token
}

// Complete marks the impression behind token as watched to the end. It
// reports false for unknown tokens, tokens of another identity, repeated
// completions and store failures.
func (l *ImpressionLedger) Complete(ctx context.Context, token, identityID string) bool {
	if token == "" || identityID == "" {
		return false
	}
	ok, err := l.store.CompleteImpression(ctx, token, identityID, l.clock.Now().UTC())
	if err != nil {
		l.logger.Warn("complete impression failed", slog.String("token", token), slog.Any("error", err))
		return false
	}
	if ok {
		l.metrics.Completions.Inc()
	}
	return ok
}

func (l *ImpressionLedger) replay(ctx context.Context, p pendingImpression) error {
	err := p.cause
	for attempt := 1; attempt <= l.cfg.MaxAttempts; attempt++ {
		if l.cfg.Backoff > 0 {
			select {
			case <-ctx.Done():
				return l.publishDeadLetter(context.WithoutCancel(ctx), pendingImpression{
					imp: p.imp, watermark: p.watermark, cause: errors.Join(err, ctx.Err()),
				})
			case <-time.After(l.cfg.Backoff * time.Duration(attempt)):
			}
		}
		imp := p.imp
		if err = l.store.RecordImpression(ctx, &imp, p.watermark); err == nil {
			l.metrics.Retries.WithLabelValues("recorded").Inc()
			l.observeRecorded(imp, imp.CampaignID == domain.FallbackCampaignID)
			l.logger.Info("impression recorded on retry",
				slog.String("token", imp.Token), slog.Int("attempt", attempt))
			return nil
		}
	}
	p.cause = err
	return l.publishDeadLetter(ctx, p)
}

// abandon dead-letters an impression the dispatcher had no time to replay.
func (l *ImpressionLedger) abandon(ctx context.Context, p pendingImpression) error {
	p.cause = errors.Join(p.cause, errDispatcherStopped)
	return l.publishDeadLetter(ctx, p)
}

func (l *ImpressionLedger) publishDeadLetter(ctx context.Context, p pendingImpression) error {
	l.metrics.Retries.WithLabelValues("dead_lettered").Inc()
	if l.deadLetter == nil {
		l.logger.Error("impression lost",
			slog.String("token", p.imp.Token),
			slog.Int64("campaign_id", p.imp.CampaignID),
			slog.String("revenue", p.imp.Revenue.String()),
			slog.Any("error", p.cause))
		return nil
	}
	return l.deadLetter.Publish(ctx, p.imp, p.watermark, p.cause)
}

func (l *ImpressionLedger) observeRecorded(imp domain.Impression, fallback bool) {
	label := "false"
	if fallback {
		label = "true"
	}
	l.metrics.Impressions.WithLabelValues(label).Inc()
	l.metrics.Revenue.Add(imp.Revenue.InexactFloat64())
}
