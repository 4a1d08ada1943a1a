// Package scheduler runs the daily counter reset.
//
// Stores already reset lazily on first touch after midnight, so the batch
// only keeps idle identities' rows tidy and dashboards accurate. Every
// ResetDay is idempotent; running it on several instances is harmless.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Resetter zeroes daily counters last reset before day.
type Resetter interface {
	ResetDay(ctx context.Context, day time.Time) (int64, error)
}

// DailyReset calls every registered Resetter once per calendar day.
type DailyReset struct {
	interval  time.Duration
	today     func() time.Time
	resetters map[string]Resetter
	logger    *slog.Logger

	done time.Time
}

// NewDailyReset creates a job that checks for a new day every interval.
// today must return midnight of the current day in the engine location.
func NewDailyReset(interval time.Duration, today func() time.Time, logger *slog.Logger) *DailyReset {
	return &DailyReset{
		interval:  interval,
		today:     today,
		resetters: make(map[string]Resetter),
		logger:    logger.With(slog.String("component", "daily_reset")),
	}
}

// Register adds a store under name. A store registered twice under
// different names is reset twice, which is safe but wasteful.
func (d *DailyReset) Register(name string, r Resetter) {
	d.resetters[name] = r
}

// Run resets immediately and then on every day change until ctx is done.
func (d *DailyReset) Run(ctx context.Context) error {
	d.Tick(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick resets every store if the day changed since the last successful
// run. A failing store is retried on the next tick. It reports whether a
// full reset completed.
func (d *DailyReset) Tick(ctx context.Context) bool {
	day := d.today()
	if day.Equal(d.done) {
		return false
	}

	ok := true
	for name, r := range d.resetters {
		n, err := r.ResetDay(ctx, day)
		if err != nil {
			ok = false
			d.logger.Error("daily reset failed",
				slog.String("store", name), slog.Any("error", err))
			continue
		}
		d.logger.Info("daily reset",
			slog.String("store", name),
			slog.String("day", day.Format(time.DateOnly)),
			slog.Int64("rows", n))
	}
	if ok {
		d.done = day
	}
	return ok
}
