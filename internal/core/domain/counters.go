package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption is the outcome of one quota check.
type Consumption struct {
	Allowed bool
	// Used is the per-resource counter after the call.
	Used int64
	// TasksToday counts every unit accepted today across resource types,
	// including the current one when Allowed.
	TasksToday int64
}

// Usage is an identity's quota usage for one day.
type Usage struct {
	PerResource map[ResourceType]int64
	TasksToday  int64
}

// AdCounters are the per-identity ad frequency counters.
type AdCounters struct {
	AdsToday        int64
	LastAdTaskCount int64
	TotalAds        int64
	LastResetDate   time.Time
}

// Stats is a dashboard snapshot of the engine. It may lag behind writes.
type Stats struct {
	ActiveCampaigns  int64
	ImpressionsToday int64
	CompletionsToday int64
	RevenueToday     decimal.Decimal
	PendingRetries   int64
}

// Day truncates t to the calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
