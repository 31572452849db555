package repository

import (
	"context"

	"rentalflow/internal/events/observers"
	"rentalflow/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository appends audit rows outside the command transaction; the
// audit trail is an observer concern and best-effort by contract.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Append(ctx context.Context, entry observers.AuditEntry) error {
	const stmt = `
INSERT INTO audit_log (order_id, order_number, event_type, prior_state, new_state, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		entry.OrderID, entry.OrderNumber, entry.EventType,
		entry.PriorState, entry.NewState, entry.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}
