package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var seedRules = []string{
	"",
	`country in ["US", "CA", "GB"]`,
	`resource != "voice"`,
	"",
	`tier == "free" || country == "ZA"`,
}

// Seed inserts demo campaigns through repo unless active campaigns already
// exist. It returns the number of campaigns created.
func Seed(ctx context.Context, repo port.CampaignRepository, now time.Time) (int, error) {
	active, err := repo.CountActive(ctx)
	if err != nil {
		return 0, err
	}
	if active > 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(now.UnixNano()))
	tierSets := [][]domain.Tier{
		{domain.TierFree},
		{domain.TierFree, domain.TierBasic},
		{domain.TierBasic, domain.TierPremium},
		{domain.TierFree, domain.TierBasic, domain.TierPremium},
	}

	for i := 1; i <= len(seedRules); i++ {
		end := now.AddDate(0, 1, 0)
		c := &domain.Campaign{
			Name:            fmt.Sprintf("Campaign %d", i),
			BaseCPM:         decimal.NewFromInt(int64(4 + r.Intn(12))),
			DurationSeconds: 15 + 15*r.Intn(3),
			TargetTiers:     tierSets[r.Intn(len(tierSets))],
			ContentRef:      fmt.Sprintf("https://example.com/video/%d.mp4", i),
			TargetingRule:   seedRules[i-1],
			ScheduleStart:   now.AddDate(0, 0, -1),
			ScheduleEnd:     &end,
			Budget:          decimal.NewFromInt(int64(50 + 50*r.Intn(10))),
			Status:          domain.CampaignActive,
		}
		if err = repo.CreateCampaign(ctx, c); err != nil {
			return i - 1, err
		}
	}
	return len(seedRules), nil
}
