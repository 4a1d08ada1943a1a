package domain

import "github.com/shopspring/decimal"

// AdDescriptor is what the caller needs to play an advertisement and report
// its completion.
type AdDescriptor struct {
	CampaignID      int64
	ContentRef      string
	DurationSeconds int
	EffectiveCPM    decimal.Decimal
	TrackingToken   string
	Fallback        bool
}
