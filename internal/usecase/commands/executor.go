package commands

import (
	"context"
	"log/slog"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/errs"
)

// Executor runs commands and keeps their history. Failures are logged but
// never recorded: only successfully executed commands enter the ledger.
type Executor struct {
	history *History
	clock   clock.Clock
}

func NewExecutor(history *History, clk clock.Clock) *Executor {
	return &Executor{
		history: history,
		clock:   clk,
	}
}

var errNilCommandResult = errs.New("command returned no order")

func (e *Executor) Execute(ctx context.Context, cmd Command) (*order.Order, error) {
	result, err := cmd.Execute(ctx)
	if err != nil {
		slog.Error("command failed",
			"command", cmd.Name(),
			"params", cmd.Params(),
			"error", err.Error())
		return nil, err
	}
	if result == nil {
		return nil, errs.Wrap(errNilCommandResult, cmd.Name())
	}

	record := CommandRecord{
		Name:       cmd.Name(),
		Params:     cmd.Params(),
		ExecutedAt: e.clock.Now(),
		Result: map[string]any{
			"order_id":     result.ID().String(),
			"order_number": result.OrderNumber(),
			"status":       result.Status().String(),
		},
	}
	e.history.Push(cmd, record)
	return result, nil
}

// Undo reverses the most recent executed command. On failure the command is
// restored to the top of the executed stack so the ledger stays consistent
// and the call can be retried.
func (e *Executor) Undo(ctx context.Context) error {
	entry, ok := e.history.popExecuted()
	if !ok {
		return errs.ErrUndoNotAvailable
	}

	if err := entry.cmd.Undo(ctx); err != nil {
		e.history.restoreExecuted(entry)
		return errs.Mark(err, errs.ErrUndoFailed)
	}
	e.history.pushRedo(entry)
	return nil
}

// Redo re-executes the most recently undone command. On failure the command
// goes back on the redo stack.
func (e *Executor) Redo(ctx context.Context) error {
	entry, ok := e.history.popRedo()
	if !ok {
		return errs.ErrRedoNotAvailable
	}

	if _, err := entry.cmd.Execute(ctx); err != nil {
		e.history.pushRedo(entry)
		return errs.Mark(err, errs.ErrRedoFailed)
	}
	entry.record.ExecutedAt = e.clock.Now()
	e.history.appendExecuted(entry)
	return nil
}

func (e *Executor) CanUndo() bool {
	return e.history.CanUndo()
}

func (e *Executor) CanRedo() bool {
	return e.history.CanRedo()
}

func (e *Executor) Records() []CommandRecord {
	return e.history.Records()
}
