package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/domain"
)

func testFactors() Factors {
	return Factors{
		TimeOfDay: []float64{0.8, 1.0, 1.1, 1.3},
		DayOfWeek: []float64{1.1, 1.0, 1.0, 1.0, 1.0, 1.05, 1.15},
		Tier: map[domain.Tier]float64{
			domain.TierFree:       1.0,
			domain.TierBasic:      0.8,
			domain.TierPremium:    0.6,
			domain.TierEnterprise: 0,
		},
		Geo: Geo{Default: 0.7, Countries: map[string]float64{"US": 1.5, "IN": 0.6}},
		Behavior: Behavior{
			Completion: []CompletionStep{{MinRate: 0.8, Factor: 1.2}, {MinRate: 0.5, Factor: 1.0}, {MinRate: 0, Factor: 0.8}},
			Session:    []SessionStep{{MinSeconds: 600, Factor: 1.1}, {MinSeconds: 60, Factor: 1.0}, {MinSeconds: 0, Factor: 0.9}},
		},
		FloorRatio: 0.5,
	}
}

// 2024-01-15 is a Monday.
func monday(hour int) time.Time {
	return time.Date(2024, 1, 15, hour, 30, 0, 0, time.UTC)
}

func rate(v float64) *float64 { return &v }

func TestFactorsValidate(t *testing.T) {
	require.NoError(t, testFactors().Validate())

	f := testFactors()
	f.TimeOfDay = f.TimeOfDay[:3]
	assert.Error(t, f.Validate())

	f = testFactors()
	f.Tier[domain.TierBasic] = 0
	assert.Error(t, f.Validate())

	f = testFactors()
	delete(f.Tier, domain.TierPremium)
	assert.Error(t, f.Validate())

	f = testFactors()
	f.Geo.Countries["us"] = 1.2
	assert.Error(t, f.Validate())

	f = testFactors()
	f.FloorRatio = 0
	assert.Error(t, f.Validate())

	f = testFactors()
	f.FloorRatio = 0.3
	assert.Error(t, f.Validate())

	f = testFactors()
	f.FloorRatio = MinFloorRatio
	assert.NoError(t, f.Validate())
}

func TestAdjustAppliesFactors(t *testing.T) {
	o := NewOptimizer(testFactors())

	got := o.Adjust(decimal.NewFromInt(10), Context{At: monday(13), Tier: domain.TierFree, Country: "us"})
	assert.True(t, decimal.RequireFromString("16.5").Equal(got), "got %s", got)

	got = o.Adjust(decimal.NewFromInt(10), Context{
		At:       monday(19),
		Tier:     domain.TierBasic,
		Country:  "US",
		Behavior: domain.Behavior{CompletionRate: rate(0.9), SessionSeconds: 900},
	})
	// 10 × 1.3 × 1.0 × 0.8 × 1.5 × 1.2 × 1.1 = 20.592
	assert.True(t, decimal.RequireFromString("20.59").Equal(got), "got %s", got)
}

func TestAdjustFloor(t *testing.T) {
	o := NewOptimizer(testFactors())
	base := decimal.NewFromInt(10)

	got := o.Adjust(base, Context{
		At:       monday(3),
		Tier:     domain.TierPremium,
		Country:  "IN",
		Behavior: domain.Behavior{CompletionRate: rate(0.1), SessionSeconds: 10},
	})
	assert.True(t, decimal.NewFromInt(5).Equal(got), "got %s", got)
}

func TestAdjustEnterpriseIsZero(t *testing.T) {
	o := NewOptimizer(testFactors())
	got := o.Adjust(decimal.NewFromInt(10), Context{At: monday(13), Tier: domain.TierEnterprise, Country: "US"})
	assert.True(t, got.IsZero())
}

func TestAdjustDeterministicAndBounded(t *testing.T) {
	o := NewOptimizer(testFactors())
	bases := []decimal.Decimal{
		decimal.RequireFromString("0.01"),
		decimal.RequireFromString("0.33"),
		decimal.RequireFromString("2.47"),
		decimal.NewFromInt(15),
	}
	tiers := []domain.Tier{domain.TierFree, domain.TierBasic, domain.TierPremium}
	countries := []string{"US", "IN", "BR", ""}

	for _, base := range bases {
		for _, tier := range tiers {
			for _, country := range countries {
				for hour := 0; hour < 24; hour += 5 {
					for day := 0; day < 7; day++ {
						c := Context{
							At:       time.Date(2024, 1, 14+day, hour, 0, 0, 0, time.UTC),
							Tier:     tier,
							Country:  country,
							Behavior: domain.Behavior{CompletionRate: rate(0.3), SessionSeconds: 30},
						}
						first := o.Adjust(base, c)
						second := o.Adjust(base, c)
						require.True(t, first.Equal(second))
						require.True(t, first.GreaterThanOrEqual(base.Mul(decimal.NewFromFloat(0.5))),
							"base=%s got=%s", base, first)
						require.LessOrEqual(t, -first.Exponent(), int32(2))
					}
				}
			}
		}
	}
}

func TestServesTier(t *testing.T) {
	o := NewOptimizer(testFactors())
	assert.True(t, o.ServesTier(domain.TierFree))
	assert.True(t, o.ServesTier(domain.TierPremium))
	assert.False(t, o.ServesTier(domain.TierEnterprise))
	assert.False(t, o.ServesTier("unknown"))
}
