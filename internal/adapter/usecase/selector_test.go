package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
	"adgate/internal/core/pricing"
	"adgate/internal/core/port/mocks"
	"adgate/internal/metrics"
)

func freeFacts() (domain.TargetingFacts, pricing.Context) {
	facts := domain.TargetingFacts{Tier: domain.TierFree, Country: "US", Resource: domain.ResourceText}
	return facts, pricing.Context{At: testNow, Tier: domain.TierFree, Country: "US"}
}

func TestSelectHighestEffectiveCPM(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(t, "low", 10, domain.TierFree)
	high := e.addCampaign(t, "high", 12, domain.TierFree, domain.TierBasic)
	e.addCampaign(t, "basic-only", 50, domain.TierBasic)

	facts, pc := freeFacts()
	cand, ok := e.selector.Select(context.Background(), facts, pc)
	require.True(t, ok)
	assert.False(t, cand.Fallback)
	assert.Equal(t, high.ID, cand.Campaign.ID)
	assert.Equal(t, "18", cand.EffectiveCPM.String())
}

func TestSelectTieBreaksOnLowestID(t *testing.T) {
	e := newTestEnv(t)
	first := e.addCampaign(t, "a", 10, domain.TierFree)
	e.addCampaign(t, "b", 10, domain.TierFree)
	e.addCampaign(t, "c", 10, domain.TierFree)

	facts, pc := freeFacts()
	for i := 0; i < 10; i++ {
		cand, ok := e.selector.Select(context.Background(), facts, pc)
		require.True(t, ok)
		assert.Equal(t, first.ID, cand.Campaign.ID)
	}
}

func TestSelectSkipsIneligible(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	paused := e.addCampaign(t, "paused", 90, domain.TierFree)
	require.NoError(t, e.admin.SetStatus(ctx, paused.ID, domain.CampaignPaused))

	future := domain.Campaign{
		Name: "future", BaseCPM: decimal.NewFromInt(80), DurationSeconds: 30,
		TargetTiers: []domain.Tier{domain.TierFree}, ContentRef: "cdn://future",
		ScheduleStart: testNow.Add(48 * time.Hour), Budget: decimal.NewFromInt(100),
	}
	require.NoError(t, e.admin.CreateCampaign(ctx, &future))

	end := testNow.Add(-time.Hour)
	ended := domain.Campaign{
		Name: "ended", BaseCPM: decimal.NewFromInt(70), DurationSeconds: 30,
		TargetTiers: []domain.Tier{domain.TierFree}, ContentRef: "cdn://ended",
		ScheduleStart: testNow.AddDate(0, 0, -7), ScheduleEnd: &end, Budget: decimal.NewFromInt(100),
	}
	require.NoError(t, e.admin.CreateCampaign(ctx, &ended))

	geo := domain.Campaign{
		Name: "canada", BaseCPM: decimal.NewFromInt(60), DurationSeconds: 30,
		TargetTiers: []domain.Tier{domain.TierFree}, ContentRef: "cdn://ca",
		TargetingRule: `country == "CA"`,
		ScheduleStart: testNow.AddDate(0, 0, -1), Budget: decimal.NewFromInt(100),
	}
	require.NoError(t, e.admin.CreateCampaign(ctx, &geo))

	eligible := e.addCampaign(t, "eligible", 5, domain.TierFree)

	facts, pc := freeFacts()
	cand, ok := e.selector.Select(ctx, facts, pc)
	require.True(t, ok)
	assert.Equal(t, eligible.ID, cand.Campaign.ID)

	got, err := e.store.GetCampaign(ctx, ended.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, got.Status)

	got, err = e.store.GetCampaign(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)
}

func TestSelectFallbackWhenNothingEligible(t *testing.T) {
	e := newTestEnv(t)
	facts, pc := freeFacts()

	cand, ok := e.selector.Select(context.Background(), facts, pc)
	require.True(t, ok)
	assert.True(t, cand.Fallback)
	assert.Equal(t, domain.FallbackCampaignID, cand.Campaign.ID)
	assert.Equal(t, "0.5", cand.EffectiveCPM.String())
	assert.Equal(t, "house://adgate/default", cand.Campaign.ContentRef)
}

func TestSelectFallbackOnCatalogError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListForTier(mock.Anything, domain.TierFree).Return(nil, errors.New("timeout"))

	pol := defaultPolicy(t)
	s := NewSelector(repo, pricing.NewOptimizer(pol.Pricing()), nil, pol.Fallback(), metrics.New(nil), discardLogger())

	facts, pc := freeFacts()
	cand, ok := s.Select(context.Background(), facts, pc)
	require.True(t, ok)
	assert.True(t, cand.Fallback)
}

func TestSelectEnterpriseGetsNothing(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	pol := defaultPolicy(t)
	s := NewSelector(repo, pricing.NewOptimizer(pol.Pricing()), nil, pol.Fallback(), metrics.New(nil), discardLogger())

	_, ok := s.Select(context.Background(),
		domain.TargetingFacts{Tier: domain.TierEnterprise},
		pricing.Context{At: testNow, Tier: domain.TierEnterprise})
	assert.False(t, ok)
	repo.AssertNotCalled(t, "ListForTier", mock.Anything, mock.Anything)
}

func TestSelectDoesNotOverrideConcurrentStatusChange(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	// listed as active, but already cancelled by an admin when retired
	spent := domain.Campaign{
		ID: 5, Name: "spent", BaseCPM: decimal.NewFromInt(10), TargetTiers: []domain.Tier{domain.TierFree},
		ScheduleStart: testNow.AddDate(0, 0, -1), Budget: decimal.NewFromInt(1),
		CumulativeRevenue: decimal.NewFromInt(1), Status: domain.CampaignActive,
	}
	repo.EXPECT().ListForTier(mock.Anything, domain.TierFree).Return([]domain.Campaign{spent}, nil)
	repo.EXPECT().CompleteIfActive(mock.Anything, int64(5)).Return(false, nil).Once()

	pol := defaultPolicy(t)
	s := NewSelector(repo, pricing.NewOptimizer(pol.Pricing()), nil, pol.Fallback(), metrics.New(nil), discardLogger())

	facts, pc := freeFacts()
	cand, ok := s.Select(context.Background(), facts, pc)
	require.True(t, ok)
	assert.True(t, cand.Fallback)
	repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSelectSkipsBrokenRule(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	rules := mocks.NewMockTargetingRules(t)
	c := domain.Campaign{
		ID: 7, Name: "x", BaseCPM: decimal.NewFromInt(10), TargetTiers: []domain.Tier{domain.TierFree},
		TargetingRule: "bogus", ScheduleStart: testNow.AddDate(0, 0, -1),
		Budget: decimal.NewFromInt(100), Status: domain.CampaignActive,
	}
	repo.EXPECT().ListForTier(mock.Anything, domain.TierFree).Return([]domain.Campaign{c}, nil)
	rules.EXPECT().Match("bogus", mock.Anything).Return(false, errors.New("no such overload"))

	pol := defaultPolicy(t)
	s := NewSelector(repo, pricing.NewOptimizer(pol.Pricing()), rules, pol.Fallback(), metrics.New(nil), discardLogger())

	facts, pc := freeFacts()
	cand, ok := s.Select(context.Background(), facts, pc)
	require.True(t, ok)
	assert.True(t, cand.Fallback)
}

func TestSelectNeverReturnsIneligible(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	for i := int64(1); i <= 12; i++ {
		tiers := []domain.Tier{domain.TierFree}
		if i%3 == 0 {
			tiers = []domain.Tier{domain.TierPremium}
		}
		c := e.addCampaign(t, "c", i, tiers...)
		if i%4 == 0 {
			require.NoError(t, e.admin.SetStatus(ctx, c.ID, domain.CampaignPaused))
		}
	}

	facts, pc := freeFacts()
	for i := 0; i < 20; i++ {
		cand, ok := e.selector.Select(ctx, facts, pc)
		require.True(t, ok)
		if cand.Fallback {
			continue
		}
		got, err := e.store.GetCampaign(ctx, cand.Campaign.ID)
		require.NoError(t, err)
		assert.True(t, got.Eligible(domain.TierFree, testNow))
	}
}
