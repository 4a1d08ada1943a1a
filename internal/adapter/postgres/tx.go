// Package postgres implements the engine's persistence ports on PostgreSQL
// using pgxpool. Counters are only ever changed with single-statement
// increments or conditional updates, so concurrent writers never lose an
// update and never push a quota past its limit.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// inTx runs fn in a read-committed transaction and commits if fn returns
// nil. Row locks taken by UPDATE are enough for our invariants, so there is
// no need for serializable isolation and its retry loops.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}
