package commands

import (
	"context"
	"time"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/sequence"

	"github.com/google/uuid"
)

type CreateParams struct {
	RentalDate time.Time
	TotalCents int64
	CustomerID uuid.UUID
	StaffID    uuid.UUID
	ItemIDs    []uuid.UUID
}

// createCommand creates a pending order, drawing its number from the
// sequence generator and reserving every referenced item. The number is
// drawn before the order transaction: if the insert then fails, that number
// stays burnt. Numbers are unique and never reused, not gap-free across
// failed creations.
type createCommand struct {
	deps   Deps
	params CreateParams

	created *order.Order
}

func NewCreateCommand(deps Deps, params CreateParams) Command {
	return &createCommand{deps: deps, params: params}
}

func (c *createCommand) Name() string {
	return "create-order"
}

func (c *createCommand) Params() map[string]any {
	itemIDs := make([]string, 0, len(c.params.ItemIDs))
	for _, id := range c.params.ItemIDs {
		itemIDs = append(itemIDs, id.String())
	}
	return map[string]any{
		"rental_date": c.params.RentalDate,
		"total_cents": c.params.TotalCents,
		"customer_id": c.params.CustomerID.String(),
		"staff_id":    c.params.StaffID.String(),
		"item_ids":    itemIDs,
	}
}

func (c *createCommand) Execute(ctx context.Context) (*order.Order, error) {
	number, err := c.deps.Generator.Next(ctx, sequence.CounterOrderNumber)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		number,
		c.params.RentalDate,
		c.params.TotalCents,
		c.params.CustomerID,
		c.params.StaffID,
		c.params.ItemIDs,
	)
	if err != nil {
		return nil, err
	}

	err = c.deps.UoW.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		items, err := c.deps.Items.FindByIDs(ctx, tx, o.ItemIDs())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return err
		}

		for _, it := range items {
			if err := it.Reserve(); err != nil {
				return errs.Mark(err, ErrItemUnavailable)
			}
		}

		if err := c.deps.Orders.Create(ctx, tx, o); err != nil {
			return err
		}
		for _, it := range items {
			if err := c.deps.Items.SaveAvailability(ctx, tx, it.ID(), it.Available()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.created = o
	return o, nil
}

// Undo removes the order and returns its items to stock. The drawn sequence
// number is intentionally not reclaimed.
func (c *createCommand) Undo(ctx context.Context) error {
	if c.created == nil {
		return errs.New("nothing to undo: command was never executed")
	}

	return c.deps.UoW.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.deps.Orders.Delete(ctx, tx, c.created.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}
		for _, itemID := range c.created.ItemIDs() {
			if err := c.deps.Items.SaveAvailability(ctx, tx, itemID, true); err != nil {
				return err
			}
		}
		return nil
	})
}
