package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var _ port.ImpressionStore = (*ImpressionStore)(nil)

// ImpressionStore implements port.ImpressionStore. An impression, the
// campaign credit and the identity's ad counters are written in one
// transaction.
type ImpressionStore struct {
	pool *pgxpool.Pool
}

// NewImpressionStore returns a new store instance.
func NewImpressionStore(pool *pgxpool.Pool) *ImpressionStore {
	return &ImpressionStore{pool: pool}
}

// AdCounters implements port.ImpressionStore.
func (s *ImpressionStore) AdCounters(ctx context.Context, identityID string, day time.Time) (domain.AdCounters, error) {
	c := domain.AdCounters{LastResetDate: day}
	err := s.pool.QueryRow(ctx, `
SELECT CASE WHEN last_reset_date < $2 THEN 0 ELSE ads_today END,
       CASE WHEN last_reset_date < $2 THEN 0 ELSE last_ad_task_count END,
       total_ads
FROM ad_counters WHERE identity_id = $1`, identityID, day).
		Scan(&c.AdsToday, &c.LastAdTaskCount, &c.TotalAds)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, nil
	}
	if err != nil {
		return domain.AdCounters{}, err
	}
	return c, nil
}

// RecordImpression implements port.ImpressionStore.
func (s *ImpressionStore) RecordImpression(ctx context.Context, imp *domain.Impression, watermark int64) error {
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
INSERT INTO impressions
    (token, campaign_id, identity_id, effective_cpm, revenue, completed, impression_date, created_at)
VALUES ($1,$2,$3,$4,$5,false,$6,$7)
ON CONFLICT (token) DO NOTHING
RETURNING id`,
			imp.Token, imp.CampaignID, imp.IdentityID, imp.EffectiveCPM, imp.Revenue,
			imp.ImpressionDate, imp.CreatedAt,
		).Scan(&imp.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			// already recorded by an earlier attempt
			return tx.QueryRow(ctx, `SELECT id FROM impressions WHERE token = $1`, imp.Token).Scan(&imp.ID)
		}
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
UPDATE campaigns
SET cumulative_impressions = cumulative_impressions + 1,
    cumulative_revenue = cumulative_revenue + $2,
    updated_at = now()
WHERE id = $1`, imp.CampaignID, imp.Revenue)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrCampaignNotFound
		}

		_, err = tx.Exec(ctx, `
INSERT INTO ad_counters (identity_id, ads_today, last_ad_task_count, total_ads, last_reset_date)
VALUES ($1, 1, $2, 1, $3)
ON CONFLICT (identity_id) DO UPDATE
SET ads_today = CASE WHEN EXCLUDED.last_reset_date < ad_counters.last_reset_date
                          THEN ad_counters.ads_today
                     WHEN ad_counters.last_reset_date < EXCLUDED.last_reset_date
                          THEN 1
                     ELSE ad_counters.ads_today + 1 END,
    last_ad_task_count = CASE WHEN EXCLUDED.last_reset_date < ad_counters.last_reset_date
                              THEN ad_counters.last_ad_task_count
                              ELSE EXCLUDED.last_ad_task_count END,
    total_ads = ad_counters.total_ads + 1,
    last_reset_date = GREATEST(ad_counters.last_reset_date, EXCLUDED.last_reset_date)`,
			imp.IdentityID, watermark, imp.ImpressionDate)
		return err
	})
	if err != nil {
		return fmt.Errorf("record impression %s: %w", imp.Token, err)
	}
	return nil
}

// CompleteImpression implements port.ImpressionStore.
func (s *ImpressionStore) CompleteImpression(ctx context.Context, token, identityID string, at time.Time) (bool, error) {
	var completed bool
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		var campaignID int64
		err := tx.QueryRow(ctx, `
UPDATE impressions SET completed = true, completed_at = $3
WHERE token = $1 AND identity_id = $2 AND NOT completed
RETURNING campaign_id`, token, identityID, at).Scan(&campaignID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
UPDATE campaigns SET cumulative_completions = cumulative_completions + 1, updated_at = now()
WHERE id = $1`, campaignID)
		if err != nil {
			return err
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("complete impression: %w", err)
	}
	return completed, nil
}

// DailyStats implements port.ImpressionStore.
func (s *ImpressionStore) DailyStats(ctx context.Context, day time.Time) (domain.Stats, error) {
	var st domain.Stats
	err := s.pool.QueryRow(ctx, `
SELECT count(*),
       count(*) FILTER (WHERE completed),
       COALESCE(sum(revenue), 0)
FROM impressions WHERE impression_date = $1`, day).
		Scan(&st.ImpressionsToday, &st.CompletionsToday, &st.RevenueToday)
	if err != nil {
		return domain.Stats{}, err
	}
	return st, nil
}

// ResetDay implements port.ImpressionStore.
func (s *ImpressionStore) ResetDay(ctx context.Context, day time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
UPDATE ad_counters SET ads_today = 0, last_ad_task_count = 0, last_reset_date = $1
WHERE last_reset_date < $1`, day)
	if err != nil {
		return 0, fmt.Errorf("reset ad counters: %w", err)
	}
	return tag.RowsAffected(), nil
}
