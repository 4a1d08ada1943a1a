package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/policy"
	"adgate/internal/core/port"
	"adgate/internal/core/pricing"
	"adgate/internal/metrics"
)

// Candidate is the campaign chosen for one ad slot.
type Candidate struct {
	Campaign     domain.Campaign
	EffectiveCPM decimal.Decimal
	Fallback     bool
}

// Selector picks the highest paying eligible campaign for a request.
type Selector struct {
	repo      port.CampaignRepository
	optimizer *pricing.Optimizer
	rules     port.TargetingRules
	fallback  policy.Fallback
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewSelector creates a selector. rules may be nil, in which case
// targeting expressions are ignored.
func NewSelector(
	repo port.CampaignRepository,
	optimizer *pricing.Optimizer,
	rules port.TargetingRules,
	fallback policy.Fallback,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Selector {
	return &Selector{
		repo:      repo,
		optimizer: optimizer,
		rules:     rules,
		fallback:  fallback,
		metrics:   m,
		logger:    logger.With(slog.String("component", "selector")),
	}
}

// Select returns the campaign to show. ok is false only when the tier does
// not see ads at all. When no campaign qualifies, or the catalog cannot be
// read, the house fallback is returned.
//
// Active campaigns found exhausted (budget spent or schedule over) are
// moved to completed on the way.
func (s *Selector) Select(ctx context.Context, facts domain.TargetingFacts, pc pricing.Context) (Candidate, bool) {
	if !s.optimizer.ServesTier(facts.Tier) {
		return Candidate{}, false
	}

	campaigns, err := s.repo.ListForTier(ctx, facts.Tier)
	if err != nil {
		s.logger.Error("list campaigns failed, serving fallback",
			slog.String("tier", string(facts.Tier)), slog.Any("error", err))
		return s.fallbackCandidate(), true
	}

	var (
		best  Candidate
		found bool
	)
	for i := range campaigns {
		c := &campaigns[i]
		if c.Status == domain.CampaignActive && c.Exhausted(pc.At) {
			s.complete(ctx, c.ID)
			continue
		}
		if !c.Eligible(facts.Tier, pc.At) || !s.matches(c, facts) {
			continue
		}
		eff := s.optimizer.Adjust(c.BaseCPM, pc)
		if !eff.IsPositive() {
			continue
		}
		if !found || eff.GreaterThan(best.EffectiveCPM) ||
			(eff.Equal(best.EffectiveCPM) && c.ID < best.Campaign.ID) {
			best = Candidate{Campaign: *c, EffectiveCPM: eff}
			found = true
		}
	}
	if !found {
		return s.fallbackCandidate(), true
	}
	return best, true
}

func (s *Selector) matches(c *domain.Campaign, facts domain.TargetingFacts) bool {
	if s.rules == nil || c.TargetingRule == "" {
		return true
	}
	ok, err := s.rules.Match(c.TargetingRule, facts)
	if err != nil {
		s.logger.Warn("targeting rule failed, skipping campaign",
			slog.Int64("campaign_id", c.ID), slog.Any("error", err))
		return false
	}
	return ok
}

// complete retires an exhausted campaign unless an admin changed its
// status since it was listed.
func (s *Selector) complete(ctx context.Context, id int64) {
	done, err := s.repo.CompleteIfActive(ctx, id)
	if err != nil {
		s.logger.Warn("complete campaign failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		return
	}
	if !done {
		return
	}
	s.metrics.CampaignsClosed.Inc()
	s.logger.Info("campaign completed", slog.Int64("campaign_id", id))
}

func (s *Selector) fallbackCandidate() Candidate {
	return Candidate{
		Campaign: domain.Campaign{
			ID:              domain.FallbackCampaignID,
			Name:            "house",
			BaseCPM:         s.fallback.CPM,
			DurationSeconds: s.fallback.DurationSeconds,
			ContentRef:      s.fallback.ContentRef,
			Status:          domain.CampaignActive,
		},
		EffectiveCPM: s.fallback.CPM,
		Fallback:     true,
	}
}
