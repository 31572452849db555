package repository

import (
	"context"
	"errors"
	"time"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*order.Order, error) {
	const query = `
SELECT id, order_number, status, rental_date, return_date, total_cents,
       customer_id, staff_id, created_at, updated_at
FROM orders
WHERE id = $1`

	var (
		orderID     uuid.UUID
		orderNumber int64
		status      string
		rentalDate  time.Time
		returnDate  pgtype.Timestamptz
		totalCents  int64
		customerID  uuid.UUID
		staffID     uuid.UUID
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&orderID, &orderNumber, &status, &rentalDate, &returnDate,
		&totalCents, &customerID, &staffID, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	itemIDs, err := r.itemIDsOf(ctx, dbtx, orderID)
	if err != nil {
		return nil, err
	}

	o, err := order.ReconstructOrder(
		orderID,
		orderNumber,
		order.Status(status),
		rentalDate,
		pgconv.TimePtrFromPgtype(returnDate),
		totalCents,
		customerID,
		staffID,
		itemIDs,
		createdAt,
		updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct order", err)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	const stmt = `
INSERT INTO orders (id, order_number, status, rental_date, return_date, total_cents,
                    customer_id, staff_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := dbtx.Exec(ctx, stmt,
		o.ID(), o.OrderNumber(), o.Status().String(), o.RentalDate(),
		pgconv.TimePtrToPgtype(o.ReturnDate()), o.TotalCents(), o.CustomerID(), o.StaffID(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("order number already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, itemID := range o.ItemIDs() {
		const linkStmt = `INSERT INTO order_items (order_id, item_id) VALUES ($1, $2)`
		if _, err := dbtx.Exec(ctx, linkStmt, o.ID(), itemID); err != nil {
			return infra.WrapRepoErr("failed to link order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	const stmt = `
UPDATE orders
SET status = $2, return_date = $3, updated_at = now()
WHERE id = $1`

	tag, err := dbtx.Exec(ctx, stmt, o.ID(), o.Status().String(), pgconv.TimePtrToPgtype(o.ReturnDate()))
	if err != nil {
		return infra.WrapRepoErr("failed to save order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete order items", err)
	}

	tag, err := dbtx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) itemIDsOf(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT item_id FROM order_items WHERE order_id = $1 ORDER BY item_id`

	rows, err := dbtx.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var itemIDs []uuid.UUID
	for rows.Next() {
		var itemID uuid.UUID
		if err := rows.Scan(&itemID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		itemIDs = append(itemIDs, itemID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return itemIDs, nil
}
