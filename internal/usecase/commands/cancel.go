package commands

import (
	"context"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// cancelCommand cancels an order and releases its items back to stock. The
// extra bookkeeping: besides the order's state, Undo must restore each
// item's availability flag exactly as it was before the cancellation.
type cancelCommand struct {
	deps    Deps
	orderID uuid.UUID

	snapshot      *stateSnapshot
	itemSnapshots map[uuid.UUID]bool
	result        *order.TransitionResult
}

func NewCancelCommand(deps Deps, orderID uuid.UUID) Command {
	return &cancelCommand{deps: deps, orderID: orderID}
}

func (c *cancelCommand) Name() string {
	return "cancel-order"
}

func (c *cancelCommand) Params() map[string]any {
	return map[string]any{"order_id": c.orderID.String()}
}

func (c *cancelCommand) Result() *order.TransitionResult {
	return c.result
}

func (c *cancelCommand) Execute(ctx context.Context) (*order.Order, error) {
	var updated *order.Order

	err := c.deps.UoW.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := c.deps.Orders.FindByID(ctx, tx, c.orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		items, err := c.deps.Items.FindByIDs(ctx, tx, o.ItemIDs())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return err
		}

		snap := snapshotOf(o)
		itemSnaps := make(map[uuid.UUID]bool, len(items))
		for _, it := range items {
			itemSnaps[it.ID()] = it.Available()
		}

		result, err := c.deps.Machine.Apply(o, order.TransitionCancel)
		if err != nil {
			return err
		}

		if err := c.deps.Orders.Save(ctx, tx, o); err != nil {
			return err
		}
		for _, it := range items {
			it.Release()
			if err := c.deps.Items.SaveAvailability(ctx, tx, it.ID(), it.Available()); err != nil {
				return err
			}
		}

		c.snapshot = &snap
		c.itemSnapshots = itemSnaps
		c.result = result
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *cancelCommand) Undo(ctx context.Context) error {
	if c.snapshot == nil {
		return errs.New("nothing to undo: command was never executed")
	}

	return c.deps.UoW.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := c.deps.Orders.FindByID(ctx, tx, c.orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		if err := o.ForceState(c.snapshot.Status, c.snapshot.ReturnDate); err != nil {
			return err
		}
		if err := c.deps.Orders.Save(ctx, tx, o); err != nil {
			return err
		}

		for itemID, available := range c.itemSnapshots {
			if err := c.deps.Items.SaveAvailability(ctx, tx, itemID, available); err != nil {
				return err
			}
		}
		return nil
	})
}
