// Package pricing computes effective CPM prices for ad campaigns.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
)

// Context is everything besides the base price that influences the
// effective CPM. At must already be in the engine's time zone.
type Context struct {
	At       time.Time
	Tier     domain.Tier
	Country  string
	Behavior domain.Behavior
}

// Optimizer adjusts base CPM prices. It is pure: the same base and context
// always produce the same price.
type Optimizer struct {
	factors Factors
}

// NewOptimizer returns an optimizer over validated factor tables.
func NewOptimizer(f Factors) *Optimizer {
	return &Optimizer{factors: f}
}

// ServesTier reports whether tier t sees ads at all. A zero multiplier
// (enterprise) means it does not.
func (o *Optimizer) ServesTier(t domain.Tier) bool {
	return o.factors.Tier[t] > 0
}

// Adjust returns base × timeOfDay × dayOfWeek × tier × geo × behavior,
// floored at base × FloorRatio and rounded to cents. A zero tier multiplier
// (enterprise) yields zero, meaning no ad.
func (o *Optimizer) Adjust(base decimal.Decimal, c Context) decimal.Decimal {
	tier, ok := o.factors.Tier[c.Tier]
	if !ok || tier == 0 {
		return decimal.Zero
	}
	multipliers := []float64{
		o.factors.timeOfDay(c.At.Hour()),
		o.factors.DayOfWeek[int(c.At.Weekday())],
		tier,
		o.factors.geo(c.Country),
		o.factors.behavior(c.Behavior),
	}
	eff := base
	for _, m := range multipliers {
		eff = eff.Mul(decimal.NewFromFloat(m))
	}

	floor := base.Mul(decimal.NewFromFloat(o.factors.FloorRatio))
	if eff.LessThan(floor) {
		eff = floor
	}
	eff = eff.Round(2)
	if eff.LessThan(floor) {
		eff = floor.RoundCeil(2)
	}
	return eff
}
