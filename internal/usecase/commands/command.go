package commands

import (
	"context"
	"time"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/sequence"
	"rentalflow/internal/usecase/shared"
)

var (
	ErrOrderNotFound   = errs.New("order not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrItemUnavailable = errs.New("item unavailable")
)

// Command is one reversible unit of work against a single order. Execute
// performs the forward action, returns the affected order (never nil on
// success), and captures whatever Undo needs to reverse it; Undo is only
// defined after a successful Execute.
type Command interface {
	Name() string
	Params() map[string]any
	Execute(ctx context.Context) (*order.Order, error)
	Undo(ctx context.Context) error
}

// CommandRecord is the audit metadata kept per executed command. Owned by the
// history; evicted oldest-first once capacity is reached.
type CommandRecord struct {
	Name       string
	Params     map[string]any
	ExecutedAt time.Time
	Result     map[string]any
}

// Deps bundles what every concrete command needs. A single Deps value is
// shared by all commands built by one OrderCommands facade.
type Deps struct {
	UoW       shared.UnitOfWork
	Orders    shared.OrderRepository
	Items     shared.ItemRepository
	Machine   *order.StateMachine
	Generator sequence.Generator
	Clock     clock.Clock
}
