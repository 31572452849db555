package repository

import (
	"context"
	"errors"

	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type SequenceRepository struct{}

func NewSequenceRepository() *SequenceRepository {
	return &SequenceRepository{}
}

// Increment performs the locked read-modify-write on one counter row. It must
// run inside the caller's transaction: the FOR UPDATE lock is held until that
// transaction commits, which is what serializes concurrent callers. The row
// is created lazily at 0 on first use.
func (r *SequenceRepository) Increment(ctx context.Context, tx db.DBTX, name string) (int64, error) {
	const ensureStmt = `
INSERT INTO sequence_counters (name, last_value, updated_at)
VALUES ($1, 0, now())
ON CONFLICT (name) DO NOTHING`

	if _, err := tx.Exec(ctx, ensureStmt, name); err != nil {
		return 0, infra.WrapRepoErr("failed to ensure sequence counter", err)
	}

	const lockQuery = `
SELECT last_value
FROM sequence_counters
WHERE name = $1
FOR UPDATE`

	var lastValue int64
	if err := tx.QueryRow(ctx, lockQuery, name).Scan(&lastValue); err != nil {
		return 0, infra.WrapRepoErr("failed to lock sequence counter", err)
	}

	next := lastValue + 1

	const updateStmt = `
UPDATE sequence_counters
SET last_value = $2, updated_at = now()
WHERE name = $1`

	if _, err := tx.Exec(ctx, updateStmt, name, next); err != nil {
		return 0, infra.WrapRepoErr("failed to advance sequence counter", err)
	}
	return next, nil
}

// Peek reads without locking; the value may be transiently stale.
func (r *SequenceRepository) Peek(ctx context.Context, dbtx db.DBTX, name string) (int64, error) {
	const query = `SELECT last_value FROM sequence_counters WHERE name = $1`

	var lastValue int64
	err := dbtx.QueryRow(ctx, query, name).Scan(&lastValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to peek sequence counter", err)
	}
	return lastValue, nil
}

// Reset is administrative and not safe to call concurrently with Increment.
func (r *SequenceRepository) Reset(ctx context.Context, dbtx db.DBTX, name string, value int64) error {
	const stmt = `
INSERT INTO sequence_counters (name, last_value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET last_value = EXCLUDED.last_value, updated_at = now()`

	if _, err := dbtx.Exec(ctx, stmt, name, value); err != nil {
		return infra.WrapRepoErr("failed to reset sequence counter", err)
	}
	return nil
}
