package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var _ port.CampaignAdmin = (*CampaignService)(nil)

// CampaignService validates and forwards campaign management calls. It
// implements port.CampaignAdmin.
type CampaignService struct {
	repo   port.CampaignRepository
	rules  port.TargetingRules
	clock  Clock
	logger *slog.Logger
}

// NewCampaignService creates a service. rules may be nil to skip rule
// compilation.
func NewCampaignService(repo port.CampaignRepository, rules port.TargetingRules, clock Clock, logger *slog.Logger) *CampaignService {
	return &CampaignService{
		repo:   repo,
		rules:  rules,
		clock:  clock,
		logger: logger.With(slog.String("component", "campaign_admin")),
	}
}

// CreateCampaign validates c, defaults its status to active and stores it.
// Counters start at zero whatever the caller sent.
func (s *CampaignService) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.CampaignActive
	}
	if c.ScheduleStart.IsZero() {
		c.ScheduleStart = s.clock.Today()
	}
	if err := s.check(c); err != nil {
		return err
	}
	c.CumulativeRevenue = decimal.Zero
	c.CumulativeImpressions = 0
	c.CumulativeCompletions = 0

	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	s.logger.Info("campaign created", slog.Int64("campaign_id", c.ID), slog.String("name", c.Name))
	return nil
}

// GetCampaign returns a campaign by id.
func (s *CampaignService) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.repo.GetCampaign(ctx, id)
}

// SetStatus pauses, resumes or ends a campaign. The house fallback cannot
// be changed.
func (s *CampaignService) SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidCampaign, status)
	}
	if id == domain.FallbackCampaignID {
		return fmt.Errorf("%w: fallback campaign is immutable", domain.ErrInvalidCampaign)
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info("campaign status changed", slog.Int64("campaign_id", id), slog.String("status", string(status)))
	return nil
}

func (s *CampaignService) check(c *domain.Campaign) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCampaign, fmt.Sprintf(format, args...))
	}
	c.Name = strings.TrimSpace(c.Name)
	switch {
	case c.Name == "":
		return invalid("name is required")
	case !c.BaseCPM.IsPositive():
		return invalid("base cpm must be positive")
	case !c.Budget.IsPositive():
		return invalid("budget must be positive")
	case c.DurationSeconds <= 0:
		return invalid("duration must be positive")
	case c.ContentRef == "":
		return invalid("content ref is required")
	case len(c.TargetTiers) == 0:
		return invalid("at least one target tier is required")
	case !c.Status.Valid():
		return invalid("status %q", c.Status)
	case c.ScheduleEnd != nil && c.ScheduleEnd.Before(c.ScheduleStart):
		return invalid("schedule ends before it starts")
	}
	for _, t := range c.TargetTiers {
		if _, err := domain.ParseTier(string(t)); err != nil {
			return invalid("%v", err)
		}
	}
	if s.rules != nil && c.TargetingRule != "" {
		if err := s.rules.Compile(c.TargetingRule); err != nil {
			return invalid("%v", err)
		}
	}
	return nil
}
