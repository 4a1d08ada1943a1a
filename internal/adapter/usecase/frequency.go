package usecase

import (
	"adgate/internal/core/domain"
	"adgate/internal/core/policy"
)

// IsAdDue reports whether an ad must precede the current unit of work.
// tasksBefore is the identity's task count today not counting the current
// unit; counters must already reflect today's reset. It never mutates
// anything, so evaluating it speculatively is safe.
func IsAdDue(counters domain.AdCounters, tasksBefore int64, f policy.Frequency) bool {
	if !f.Enabled() {
		return false
	}
	if counters.AdsToday >= f.MaxAdsPerDay {
		return false
	}
	return tasksBefore-counters.LastAdTaskCount >= f.UnitsPerAd
}
