package shared

import (
	"context"

	"rentalflow/internal/domain/item"
	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository work to a transaction. Within retries on
// serialization failures; WithinSerializable additionally raises the
// isolation level for read-modify-write spans such as the sequence counter.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single-query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*order.Order, error)
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error
	Save(ctx context.Context, dbtx db.DBTX, o *order.Order) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	FindByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*item.Item, error)
	SaveAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, available bool) error
}

// SequenceRepository mutates a named counter row. Increment must be called
// inside a transaction: it takes a row lock for the read-modify-write span
// so concurrent callers serialize instead of interleaving.
type SequenceRepository interface {
	Increment(ctx context.Context, tx db.DBTX, name string) (int64, error)
	Peek(ctx context.Context, dbtx db.DBTX, name string) (int64, error)
	Reset(ctx context.Context, dbtx db.DBTX, name string, value int64) error
}
