package commands

import (
	"context"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/events"
	"rentalflow/internal/usecase/queries"

	"github.com/google/uuid"
)

// OrderCommands is the write-side surface exposed to the HTTP layer: the
// four lifecycle transitions plus creation, with undo/redo over all of them.
type OrderCommands interface {
	Create(ctx context.Context, params CreateParams) (*queries.OrderView, error)
	Confirm(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)
	Deliver(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)
	Return(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)

	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	CanUndo() bool
	CanRedo() bool
	History() []CommandRecord
}

// resulter is implemented by commands that know their transition outcome.
type resulter interface {
	Result() *order.TransitionResult
}

type orderCommandsImpl struct {
	deps     Deps
	executor *Executor
	bus      *events.Bus
}

func NewOrderCommands(deps Deps, executor *Executor, bus *events.Bus) OrderCommands {
	return &orderCommandsImpl{
		deps:     deps,
		executor: executor,
		bus:      bus,
	}
}

func (s *orderCommandsImpl) Create(ctx context.Context, params CreateParams) (*queries.OrderView, error) {
	cmd := NewCreateCommand(s.deps, params)

	o, err := s.executor.Execute(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.bus.Notify(ctx, events.TypeOrderCreated, events.SnapshotOf(o), nil)
	return queries.NewOrderView(o, s.deps.Machine), nil
}

func (s *orderCommandsImpl) Confirm(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	return s.transition(ctx, NewConfirmCommand(s.deps, orderID))
}

func (s *orderCommandsImpl) Deliver(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	return s.transition(ctx, NewDeliverCommand(s.deps, orderID))
}

func (s *orderCommandsImpl) Return(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	return s.transition(ctx, NewReturnCommand(s.deps, orderID))
}

func (s *orderCommandsImpl) Cancel(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	return s.transition(ctx, NewCancelCommand(s.deps, orderID))
}

func (s *orderCommandsImpl) transition(ctx context.Context, cmd Command) (*queries.OrderView, error) {
	o, err := s.executor.Execute(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if r, ok := cmd.(resulter); ok {
		if result := r.Result(); result != nil {
			// The actual prior state rides on the event so aggregate
			// consumers decrement the right bucket, not a guessed one.
			metadata := map[string]string{
				events.MetaPriorState: result.From.String(),
			}
			if result.LateReturn {
				metadata[events.MetaLateReturn] = "true"
			}

			tr := transitionFor(result.To)
			s.bus.Notify(ctx, events.TypeForTransition(tr), events.SnapshotOf(o), metadata)
		}
	}

	return queries.NewOrderView(o, s.deps.Machine), nil
}

func transitionFor(to order.Status) order.Transition {
	switch to {
	case order.StatusConfirmed:
		return order.TransitionConfirm
	case order.StatusDelivered:
		return order.TransitionDeliver
	case order.StatusReturned:
		return order.TransitionReturn
	default:
		return order.TransitionCancel
	}
}

func (s *orderCommandsImpl) Undo(ctx context.Context) error {
	return s.executor.Undo(ctx)
}

func (s *orderCommandsImpl) Redo(ctx context.Context) error {
	return s.executor.Redo(ctx)
}

func (s *orderCommandsImpl) CanUndo() bool {
	return s.executor.CanUndo()
}

func (s *orderCommandsImpl) CanRedo() bool {
	return s.executor.CanRedo()
}

func (s *orderCommandsImpl) History() []CommandRecord {
	return s.executor.Records()
}
