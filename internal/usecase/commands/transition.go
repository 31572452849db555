package commands

import (
	"context"
	"time"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// stateSnapshot captures the order fields a transition mutates, taken before
// the state machine runs so Undo can restore them verbatim.
type stateSnapshot struct {
	Status     order.Status
	ReturnDate *time.Time
}

func snapshotOf(o *order.Order) stateSnapshot {
	return stateSnapshot{
		Status:     o.Status(),
		ReturnDate: o.ReturnDate(),
	}
}

// transitionCommand drives one forward lifecycle edge (confirm, deliver,
// return). Cancel has its own command because it also touches item stock.
type transitionCommand struct {
	deps       Deps
	orderID    uuid.UUID
	transition order.Transition

	snapshot *stateSnapshot
	result   *order.TransitionResult
}

func NewConfirmCommand(deps Deps, orderID uuid.UUID) Command {
	return &transitionCommand{deps: deps, orderID: orderID, transition: order.TransitionConfirm}
}

func NewDeliverCommand(deps Deps, orderID uuid.UUID) Command {
	return &transitionCommand{deps: deps, orderID: orderID, transition: order.TransitionDeliver}
}

func NewReturnCommand(deps Deps, orderID uuid.UUID) Command {
	return &transitionCommand{deps: deps, orderID: orderID, transition: order.TransitionReturn}
}

func (c *transitionCommand) Name() string {
	return c.transition.String() + "-order"
}

func (c *transitionCommand) Params() map[string]any {
	return map[string]any{"order_id": c.orderID.String()}
}

// Result exposes the state machine's outcome (prior state, late-return flag)
// after a successful Execute.
func (c *transitionCommand) Result() *order.TransitionResult {
	return c.result
}

func (c *transitionCommand) Execute(ctx context.Context) (*order.Order, error) {
	var updated *order.Order

	err := c.deps.UoW.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := c.deps.Orders.FindByID(ctx, tx, c.orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return err
		}

		snap := snapshotOf(o)

		result, err := c.deps.Machine.Apply(o, c.transition)
		if err != nil {
			// Expected, user-facing rejection; propagated unmodified.
			return err
		}

		if err := c.deps.Orders.Save(ctx, tx, o); err != nil {
			return err
		}

		c.snapshot = &snap
		c.result = result
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Undo force-restores the captured snapshot. This deliberately bypasses the
// forward-only transition table: reversal is a privileged operation, not a
// lifecycle edge, and can only land on a state the order has actually held.
func (c *transitionCommand) Undo(ctx context.Context) error {
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
		return c.deps.Orders.Save(ctx, tx, o)
	})
}
