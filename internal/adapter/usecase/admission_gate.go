package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"adgate/internal/core/domain"
	"adgate/internal/core/policy"
	"adgate/internal/core/port"
	"adgate/internal/core/pricing"
	"adgate/internal/metrics"
)

var _ port.AdmissionUseCase = (*AdmissionGate)(nil)

// AdmissionGate combines the quota ledger, frequency policy, selector and
// impression ledger into one decision per request. It implements
// port.AdmissionUseCase.
//
// Requests of one identity are serialized in-process so that the quota
// check and the ad decision observe the same counters. Stores are atomic
// on their own, so running several instances stays within quota; only ad
// cadence may drift across instances.
type AdmissionGate struct {
	quota     *QuotaLedger
	selector  *Selector
	ledger    *ImpressionLedger
	campaigns port.CampaignRepository
	policy    *policy.Policy
	clock     Clock
	locks     keyedMutex
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewAdmissionGate wires a gate from its parts.
func NewAdmissionGate(
	quota *QuotaLedger,
	selector *Selector,
	ledger *ImpressionLedger,
	campaigns port.CampaignRepository,
	pol *policy.Policy,
	clock Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *AdmissionGate {
	return &AdmissionGate{
		quota:     quota,
		selector:  selector,
		ledger:    ledger,
		campaigns: campaigns,
		policy:    pol,
		clock:     clock,
		metrics:   m,
		logger:    logger.With(slog.String("component", "admission_gate")),
	}
}

// Evaluate implements port.AdmissionUseCase.
//
// Once the quota unit is consumed nothing is rolled back, and the request
// context is detached from the accounting writes: a caller giving up does
// not undo a consumed unit or a served impression.
func (g *AdmissionGate) Evaluate(ctx context.Context, req domain.AdmissionRequest) (domain.Decision, error) {
	start := time.Now()
	if err := validate(&req); err != nil {
		return domain.Decision{}, err
	}
	ctx = context.WithoutCancel(ctx)

	unlock := g.locks.Lock(req.Identity.ID)
	defer unlock()

	dec := g.evaluate(ctx, req)
	g.metrics.Decisions.WithLabelValues(string(dec.Status), string(dec.Reason)).Inc()
	g.metrics.EvaluateDuration.Observe(time.Since(start).Seconds())
	return dec, nil
}

func (g *AdmissionGate) evaluate(ctx context.Context, req domain.AdmissionRequest) domain.Decision {
	id := req.Identity
	log := g.logger.With(slog.String("identity_id", id.ID), slog.String("resource", string(req.Resource)))

	q, err := g.quota.TryConsume(ctx, id, req.Resource)
	if err != nil {
		log.Error("quota check failed, denying", slog.Any("error", err))
		return domain.Decision{Status: domain.StatusDenied, Reason: domain.ReasonQuotaUnavailable}
	}
	if !q.Allowed {
		log.Debug("quota exceeded")
		return domain.Decision{Status: domain.StatusDenied, Reason: domain.ReasonQuotaExceeded}
	}

	dec := domain.Decision{Status: domain.StatusGranted, RemainingQuota: q.Remaining}
	if id.Tier == domain.TierEnterprise {
		return dec
	}
	freq := g.policy.Frequency(id.Tier)
	if !freq.Enabled() {
		return dec
	}

	counters, err := g.ledger.Counters(ctx, id.ID)
	if err != nil {
		log.Warn("read ad counters failed, granting without ad", slog.Any("error", err))
		return dec
	}
	if !IsAdDue(counters, q.TasksToday-1, freq) {
		return dec
	}

	facts := domain.TargetingFacts{Tier: id.Tier, Country: id.Country, Resource: req.Resource}
	cand, ok := g.selector.Select(ctx, facts, pricing.Context{
		At:       g.clock.Now(),
		Tier:     id.Tier,
		Country:  id.Country,
		Behavior: req.Behavior,
	})
	if !ok || !cand.EffectiveCPM.IsPositive() {
		return dec
	}

	token := g.ledger.Record(ctx, id.ID, cand, q.TasksToday)
	dec.Status = domain.StatusGrantedWithAd
	dec.Ad = &domain.AdDescriptor{
		CampaignID:      cand.Campaign.ID,
		ContentRef:      cand.Campaign.ContentRef,
		DurationSeconds: cand.Campaign.DurationSeconds,
		EffectiveCPM:    cand.EffectiveCPM,
		TrackingToken:   token,
		Fallback:        cand.Fallback,
	}
	log.Debug("ad served",
		slog.Int64("campaign_id", cand.Campaign.ID),
		slog.String("effective_cpm", cand.EffectiveCPM.String()))
	return dec
}

// CompleteImpression implements port.AdmissionUseCase.
func (g *AdmissionGate) CompleteImpression(ctx context.Context, token, identityID string) bool {
	return g.ledger.Complete(context.WithoutCancel(ctx), token, identityID)
}

// Stats implements port.AdmissionUseCase. Figures come from separate reads
// and may be slightly out of step with each other.
func (g *AdmissionGate) Stats(ctx context.Context) (domain.Stats, error) {
	st, err := g.ledger.store.DailyStats(ctx, g.clock.Today())
	if err != nil {
		return domain.Stats{}, fmt.Errorf("daily stats: %w", err)
	}
	active, err := g.campaigns.CountActive(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count active campaigns: %w", err)
	}
	st.ActiveCampaigns = active
	st.PendingRetries = g.ledger.Pending()
	return st, nil
}

// Usage implements port.AdmissionUseCase.
func (g *AdmissionGate) Usage(ctx context.Context, identityID string) (domain.Usage, error) {
	if identityID == "" {
		return domain.Usage{}, domain.ErrInvalidIdentity
	}
	return g.quota.Usage(ctx, identityID)
}

func validate(req *domain.AdmissionRequest) error {
	if strings.TrimSpace(req.Identity.ID) == "" {
		return fmt.Errorf("%w: empty id", domain.ErrInvalidIdentity)
	}
	if _, err := domain.ParseTier(string(req.Identity.Tier)); err != nil {
		return err
	}
	if _, err := domain.ParseResourceType(string(req.Resource)); err != nil {
		return err
	}
	req.Identity.Country = strings.ToUpper(strings.TrimSpace(req.Identity.Country))
	if r := req.Behavior.CompletionRate; r != nil && (*r < 0 || *r > 1) {
		return fmt.Errorf("%w: completion rate %v out of [0,1]", domain.ErrInvalidRequest, *r)
	}
	return nil
}
