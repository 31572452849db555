package repository

import (
	"context"
	"time"

	"rentalflow/internal/domain/item"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func (r *ItemRepository) FindByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*item.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
SELECT id, name, daily_rate_cents, available, created_at, updated_at
FROM items
WHERE id = ANY($1)
ORDER BY id`

	rows, err := dbtx.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items", err)
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var (
			id             uuid.UUID
			name           string
			dailyRateCents int64
			available      bool
			createdAt      time.Time
			updatedAt      time.Time
		)
		if err := rows.Scan(&id, &name, &dailyRateCents, &available, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		items = append(items, item.ReconstructItem(id, name, dailyRateCents, available, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate items", err)
	}

	if len(items) != len(ids) {
		return nil, infra.WrapRepoErr("some items not found", nil, infra.KindNotFound)
	}
	return items, nil
}

func (r *ItemRepository) SaveAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, available bool) error {
	const stmt = `UPDATE items SET available = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, stmt, id, available)
	if err != nil {
		return infra.WrapRepoErr("failed to save item availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
