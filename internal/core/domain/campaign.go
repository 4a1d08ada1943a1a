package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// FallbackCampaignID identifies the house campaign served when nothing else
// is eligible. It exists in every store and is never listed by the catalog.
const FallbackCampaignID int64 = 0

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignPaused, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// Campaign represents an advertiser-funded video campaign.
// Money fields are in the settlement currency.
type Campaign struct {
	ID              int64
	Name            string
	BaseCPM         decimal.Decimal // price per thousand impressions
	DurationSeconds int
	TargetTiers     []Tier
	ContentRef      string
	// TargetingRule is an optional CEL expression over tier, country and
	// resource. Empty means no extra targeting.
	TargetingRule         string
	ScheduleStart         time.Time
	ScheduleEnd           *time.Time
	Budget                decimal.Decimal
	CumulativeRevenue     decimal.Decimal
	CumulativeImpressions int64
	CumulativeCompletions int64
	Status                CampaignStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Targets reports whether the campaign targets tier t.
func (c *Campaign) Targets(t Tier) bool {
	return slices.Contains(c.TargetTiers, t)
}

// InSchedule reports whether now falls inside the schedule window.
func (c *Campaign) InSchedule(now time.Time) bool {
	if now.Before(c.ScheduleStart) {
		return false
	}
	return c.ScheduleEnd == nil || !c.ScheduleEnd.Before(now)
}

// HasBudget reports whether revenue is still below the budget ceiling.
func (c *Campaign) HasBudget() bool {
	return c.CumulativeRevenue.LessThan(c.Budget)
}

// Exhausted reports whether an active campaign should move to completed:
// its budget is spent or its schedule has ended.
func (c *Campaign) Exhausted(now time.Time) bool {
	if !c.HasBudget() {
		return true
	}
	return c.ScheduleEnd != nil && c.ScheduleEnd.Before(now)
}

// Eligible reports whether the campaign may be selected for tier t at now.
func (c *Campaign) Eligible(t Tier, now time.Time) bool {
	return c.Status == CampaignActive && c.Targets(t) && c.InSchedule(now) && c.HasBudget()
}
