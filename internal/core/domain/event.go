package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Impression is a record of an ad being served. It is immutable except for
// the single transition to completed.
type Impression struct {
	ID             int64
	Token          string
	CampaignID     int64
	IdentityID     string
	EffectiveCPM   decimal.Decimal
	Revenue        decimal.Decimal // EffectiveCPM / 1000
	Completed      bool
	ImpressionDate time.Time // calendar day, midnight in the engine location
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

var thousand = decimal.NewFromInt(1000)

// RevenueForCPM returns the revenue accrued by one impression at cpm.
func RevenueForCPM(cpm decimal.Decimal) decimal.Decimal {
	return cpm.Div(thousand)
}
