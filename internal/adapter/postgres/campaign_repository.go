package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

const campaignColumns = `
    id,
    name,
    base_cpm,
    duration_seconds,
    target_tiers,
    content_ref,
    targeting_rule,
    schedule_start,
    schedule_end,
    budget,
    cumulative_revenue,
    cumulative_impressions,
    cumulative_completions,
    status,
    created_at,
    updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListForTier implements port.CampaignRepository.
func (r *CampaignRepository) ListForTier(ctx context.Context, tier domain.Tier) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
FROM campaigns
WHERE id <> $1 AND $2 = ANY(target_tiers)
ORDER BY id`, domain.FallbackCampaignID, string(tier))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign implements port.CampaignRepository.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign implements port.CampaignRepository.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	tiers := make([]string, len(c.TargetTiers))
	for i, t := range c.TargetTiers {
		tiers[i] = string(t)
	}
	err := r.pool.QueryRow(ctx, `
INSERT INTO campaigns
    (name, base_cpm, duration_seconds, target_tiers, content_ref, targeting_rule,
     schedule_start, schedule_end, budget, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id, created_at, updated_at`,
		c.Name, c.BaseCPM, c.DurationSeconds, tiers, c.ContentRef, c.TargetingRule,
		c.ScheduleStart, c.ScheduleEnd, c.Budget, string(c.Status),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// SetStatus implements port.CampaignRepository.
func (r *CampaignRepository) SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// CompleteIfActive implements port.CampaignRepository.
func (r *CampaignRepository) CompleteIfActive(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE campaigns SET status = 'completed', updated_at = now()
WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountActive implements port.CampaignRepository.
func (r *CampaignRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE status = 'active' AND id <> $1`,
		domain.FallbackCampaignID).Scan(&n)
	return n, err
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		tiers  []string
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BaseCPM,
		&c.DurationSeconds,
		&tiers,
		&c.ContentRef,
		&c.TargetingRule,
		&c.ScheduleStart,
		&c.ScheduleEnd,
		&c.Budget,
		&c.CumulativeRevenue,
		&c.CumulativeImpressions,
		&c.CumulativeCompletions,
		&status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.CampaignStatus(status)
	c.TargetTiers = make([]domain.Tier, len(tiers))
	for i, t := range tiers {
		c.TargetTiers[i] = domain.Tier(t)
	}
	return c, nil
}
