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

var _ port.QuotaStore = (*QuotaStore)(nil)

// QuotaStore implements port.QuotaStore on the quota_usage and quota_tasks
// tables. Rows carry the date they were last reset; a row dated before the
// requested day counts as zero and is reset on first write.
type QuotaStore struct {
	pool *pgxpool.Pool
}

// NewQuotaStore returns a new store instance.
func NewQuotaStore(pool *pgxpool.Pool) *QuotaStore {
	return &QuotaStore{pool: pool}
}

// Consume implements port.QuotaStore.
func (s *QuotaStore) Consume(ctx context.Context, identityID string, resource domain.ResourceType, limit int64, day time.Time) (domain.Consumption, error) {
	var res domain.Consumption
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		// make sure the row exists and belongs to today
		_, err := tx.Exec(ctx, `
INSERT INTO quota_usage (identity_id, resource, used, usage_date)
VALUES ($1, $2, 0, $3)
ON CONFLICT (identity_id, resource) DO UPDATE
SET used = CASE WHEN quota_usage.usage_date < EXCLUDED.usage_date THEN 0 ELSE quota_usage.used END,
    usage_date = GREATEST(quota_usage.usage_date, EXCLUDED.usage_date)`,
			identityID, string(resource), day)
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
UPDATE quota_usage SET used = used + 1
WHERE identity_id = $1 AND resource = $2 AND ($3::bigint < 0 OR used < $3::bigint)
RETURNING used`, identityID, string(resource), limit).Scan(&res.Used)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			res.Allowed = false
			if err = tx.QueryRow(ctx, `SELECT used FROM quota_usage WHERE identity_id = $1 AND resource = $2`,
				identityID, string(resource)).Scan(&res.Used); err != nil {
				return err
			}
			return tx.QueryRow(ctx, `
SELECT COALESCE((SELECT CASE WHEN usage_date < $2 THEN 0 ELSE tasks END
                 FROM quota_tasks WHERE identity_id = $1), 0)`,
				identityID, day).Scan(&res.TasksToday)
		case err != nil:
			return err
		}

		res.Allowed = true
		return tx.QueryRow(ctx, `
INSERT INTO quota_tasks (identity_id, tasks, usage_date)
VALUES ($1, 1, $2)
ON CONFLICT (identity_id) DO UPDATE
SET tasks = CASE WHEN quota_tasks.usage_date < EXCLUDED.usage_date THEN 1 ELSE quota_tasks.tasks + 1 END,
    usage_date = GREATEST(quota_tasks.usage_date, EXCLUDED.usage_date)
RETURNING tasks`, identityID, day).Scan(&res.TasksToday)
	})
	if err != nil {
		return domain.Consumption{}, fmt.Errorf("consume quota: %w", err)
	}
	return res, nil
}

// Usage implements port.QuotaStore.
func (s *QuotaStore) Usage(ctx context.Context, identityID string, day time.Time) (domain.Usage, error) {
	rows, err := s.pool.Query(ctx, `
SELECT resource, used FROM quota_usage
WHERE identity_id = $1 AND usage_date >= $2`, identityID, day)
	if err != nil {
		return domain.Usage{}, err
	}
	type usageRow struct {
		Resource string
		Used     int64
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[usageRow])
	if err != nil {
		return domain.Usage{}, err
	}

	u := domain.Usage{PerResource: make(map[domain.ResourceType]int64, len(list))}
	for _, r := range list {
		u.PerResource[domain.ResourceType(r.Resource)] = r.Used
	}
	err = s.pool.QueryRow(ctx, `
SELECT COALESCE((SELECT tasks FROM quota_tasks WHERE identity_id = $1 AND usage_date >= $2), 0)`,
		identityID, day).Scan(&u.TasksToday)
	if err != nil {
		return domain.Usage{}, err
	}
	return u, nil
}

// ResetDay implements port.QuotaStore.
func (s *QuotaStore) ResetDay(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := inTx(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE quota_usage SET used = 0, usage_date = $1 WHERE usage_date < $1`, day); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE quota_tasks SET tasks = 0, usage_date = $1 WHERE usage_date < $1`, day)
		if err != nil {
			return err
		}
		n = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reset quota: %w", err)
	}
	return n, nil
}
