// Package memory provides an in-process implementation of the engine's
// persistence ports. It is used for local development and tests; every
// operation is serialized by a single mutex, which gives the same atomicity
// guarantees as the PostgreSQL adapter.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var (
	_ port.QuotaStore         = (*Store)(nil)
	_ port.CampaignRepository = (*Store)(nil)
	_ port.ImpressionStore    = (*Store)(nil)
)

type identityUsage struct {
	resetDate   time.Time
	perResource map[domain.ResourceType]int64
	tasks       int64
}

// Store keeps quotas, campaigns and impressions in memory.
type Store struct {
	mu          sync.Mutex
	usage       map[string]*identityUsage
	ads         map[string]*domain.AdCounters
	campaigns   map[int64]*domain.Campaign
	impressions map[string]*domain.Impression
	nextCampID  int64
	nextImpID   int64
}

// New returns an empty store holding only the fallback campaign.
func New() *Store {
	s := &Store{
		usage:       make(map[string]*identityUsage),
		ads:         make(map[string]*domain.AdCounters),
		campaigns:   make(map[int64]*domain.Campaign),
		impressions: make(map[string]*domain.Impression),
	}
	s.campaigns[domain.FallbackCampaignID] = &domain.Campaign{
		ID:     domain.FallbackCampaignID,
		Name:   "house",
		Status: domain.CampaignActive,
	}
	return s
}

// Consume implements port.QuotaStore.
func (s *Store) Consume(_ context.Context, identityID string, resource domain.ResourceType, limit int64, day time.Time) (domain.Consumption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.usageFor(identityID, day)
	used := u.perResource[resource]
	if limit >= 0 && used >= limit {
		return domain.Consumption{Allowed: false, Used: used, TasksToday: u.tasks}, nil
	}
	u.perResource[resource] = used + 1
	u.tasks++
	return domain.Consumption{Allowed: true, Used: used + 1, TasksToday: u.tasks}, nil
}

// Usage implements port.QuotaStore.
func (s *Store) Usage(_ context.Context, identityID string, day time.Time) (domain.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.Usage{PerResource: make(map[domain.ResourceType]int64)}
	u, ok := s.usage[identityID]
	if !ok || u.resetDate.Before(day) {
		return out, nil
	}
	for r, v := range u.perResource {
		out.PerResource[r] = v
	}
	out.TasksToday = u.tasks
	return out, nil
}

// ResetDay implements port.QuotaStore and port.ImpressionStore; both reset
// their own counters so calling it twice is harmless.
func (s *Store) ResetDay(_ context.Context, day time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, u := range s.usage {
		if u.resetDate.Before(day) {
			u.resetDate = day
			u.perResource = make(map[domain.ResourceType]int64)
			u.tasks = 0
			n++
		}
	}
	for _, a := range s.ads {
		if a.LastResetDate.Before(day) {
			a.LastResetDate = day
			a.AdsToday = 0
			a.LastAdTaskCount = 0
			n++
		}
	}
	return n, nil
}

func (s *Store) usageFor(identityID string, day time.Time) *identityUsage {
	u, ok := s.usage[identityID]
	if !ok {
		u = &identityUsage{resetDate: day, perResource: make(map[domain.ResourceType]int64)}
		s.usage[identityID] = u
	}
	if u.resetDate.Before(day) {
		u.resetDate = day
		u.perResource = make(map[domain.ResourceType]int64)
		u.tasks = 0
	}
	return u
}

// ListForTier implements port.CampaignRepository.
func (s *Store) ListForTier(_ context.Context, tier domain.Tier) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Campaign, 0, len(s.campaigns))
	for id, c := range s.campaigns {
		if id == domain.FallbackCampaignID || !c.Targets(tier) {
			continue
		}
		out = append(out, cloneCampaign(c))
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// GetCampaign implements port.CampaignRepository.
func (s *Store) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrCampaignNotFound
	}
	out := cloneCampaign(c)
	return &out, nil
}

// CreateCampaign implements port.CampaignRepository.
func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCampID++
	now := time.Now().UTC()
	c.ID = s.nextCampID
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := cloneCampaign(c)
	s.campaigns[c.ID] = &stored
	return nil
}

// SetStatus implements port.CampaignRepository.
func (s *Store) SetStatus(_ context.Context, id int64, status domain.CampaignStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// CompleteIfActive implements port.CampaignRepository.
func (s *Store) CompleteIfActive(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return false, domain.ErrCampaignNotFound
	}
	if c.Status != domain.CampaignActive {
		return false, nil
	}
	c.Status = domain.CampaignCompleted
	c.UpdatedAt = time.Now().UTC()
	return true, nil
}

// CountActive implements port.CampaignRepository.
func (s *Store) CountActive(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, c := range s.campaigns {
		if id != domain.FallbackCampaignID && c.Status == domain.CampaignActive {
			n++
		}
	}
	return n, nil
}

// AdCounters implements port.ImpressionStore.
func (s *Store) AdCounters(_ context.Context, identityID string, day time.Time) (domain.AdCounters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.ads[identityID]
	if !ok {
		return domain.AdCounters{LastResetDate: day}, nil
	}
	if a.LastResetDate.Before(day) {
		return domain.AdCounters{TotalAds: a.TotalAds, LastResetDate: day}, nil
	}
	return *a, nil
}

// RecordImpression implements port.ImpressionStore.
func (s *Store) RecordImpression(_ context.Context, imp *domain.Impression, watermark int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.impressions[imp.Token]; ok {
		imp.ID = prev.ID
		return nil
	}
	c, ok := s.campaigns[imp.CampaignID]
	if !ok {
		return fmt.Errorf("record impression: campaign %d: %w", imp.CampaignID, domain.ErrCampaignNotFound)
	}

	s.nextImpID++
	imp.ID = s.nextImpID
	if imp.CreatedAt.IsZero() {
		imp.CreatedAt = time.Now().UTC()
	}
	stored := *imp
	s.impressions[imp.Token] = &stored

	c.CumulativeImpressions++
	c.CumulativeRevenue = c.CumulativeRevenue.Add(imp.Revenue)

	a, ok := s.ads[imp.IdentityID]
	if !ok {
		a = &domain.AdCounters{LastResetDate: imp.ImpressionDate}
		s.ads[imp.IdentityID] = a
	}
	a.TotalAds++
	if imp.ImpressionDate.Before(a.LastResetDate) {
		// replay of an earlier day: today's cadence is left alone
		return nil
	}
	if a.LastResetDate.Before(imp.ImpressionDate) {
		a.LastResetDate = imp.ImpressionDate
		a.AdsToday = 0
	}
	a.AdsToday++
	a.LastAdTaskCount = watermark
	return nil
}

// CompleteImpression implements port.ImpressionStore.
func (s *Store) CompleteImpression(_ context.Context, token, identityID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imp, ok := s.impressions[token]
	if !ok || imp.IdentityID != identityID || imp.Completed {
		return false, nil
	}
	imp.Completed = true
	completedAt := at
	imp.CompletedAt = &completedAt
	if c, ok := s.campaigns[imp.CampaignID]; ok {
		c.CumulativeCompletions++
	}
	return true, nil
}

// DailyStats implements port.ImpressionStore.
func (s *Store) DailyStats(_ context.Context, day time.Time) (domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := domain.Stats{RevenueToday: decimal.Zero}
	for _, imp := range s.impressions {
		if !imp.ImpressionDate.Equal(day) {
			continue
		}
		st.ImpressionsToday++
		st.RevenueToday = st.RevenueToday.Add(imp.Revenue)
		if imp.Completed {
			st.CompletionsToday++
		}
	}
	return st, nil
}

// Impression returns a copy of the impression behind token.
func (s *Store) Impression(token string) (domain.Impression, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imp, ok := s.impressions[token]
	if !ok {
		return domain.Impression{}, false
	}
	return *imp, true
}

// ImpressionCount returns the number of stored impressions.
func (s *Store) ImpressionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.impressions)
}

func cloneCampaign(c *domain.Campaign) domain.Campaign {
	out := *c
	out.TargetTiers = slices.Clone(c.TargetTiers)
	if c.ScheduleEnd != nil {
		end := *c.ScheduleEnd
		out.ScheduleEnd = &end
	}
	return out
}
