//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentalflow/internal/domain/item"
	"rentalflow/internal/domain/order"
	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	deps     commands.Deps
	orders   *fakeOrderRepo
	items    *fakeItemRepo
	gen      *fakeGenerator
	clk      *clock.MockClock
	history  *commands.History
	executor *commands.Executor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	orders := newFakeOrderRepo()
	items := newFakeItemRepo()
	gen := &fakeGenerator{}
	clk := clock.NewMockClock(testTime)
	machine := order.NewStateMachine(clk, order.WithEntryHook(func(*order.Order, order.Status, order.Status) {}))

	history := commands.NewHistory(50)
	return &testEnv{
		deps: commands.Deps{
			UoW:       fakeUoW{},
			Orders:    orders,
			Items:     items,
			Machine:   machine,
			Generator: gen,
			Clock:     clk,
		},
		orders:   orders,
		items:    items,
		gen:      gen,
		clk:      clk,
		history:  history,
		executor: commands.NewExecutor(history, clk),
	}
}

// orderState is the comparable projection used to assert that undo restores
// an order exactly.
type orderState struct {
	ID          uuid.UUID
	OrderNumber int64
	Status      order.Status
	RentalDate  time.Time
	ReturnDate  *time.Time
	TotalCents  int64
	ItemIDs     []uuid.UUID
}

func stateOf(o *order.Order) orderState {
	return orderState{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		Status:      o.Status(),
		RentalDate:  o.RentalDate(),
		ReturnDate:  o.ReturnDate(),
		TotalCents:  o.TotalCents(),
		ItemIDs:     o.ItemIDs(),
	}
}

func (e *testEnv) seedOrder(t *testing.T, status order.Status, itemCount int) *order.Order {
	t.Helper()

	itemIDs := make([]uuid.UUID, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		it, err := item.NewItem("gear", 1000)
		require.NoError(t, err)
		if status != order.StatusCancelled {
			require.NoError(t, it.Reserve())
		}
		e.items.put(it)
		itemIDs = append(itemIDs, it.ID())
	}

	var returnDate *time.Time
	if status == order.StatusReturned {
		rd := testTime.Add(24 * time.Hour)
		returnDate = &rd
	}
	o, err := order.ReconstructOrder(
		uuid.New(), 100, status, testTime, returnDate, 5000,
		uuid.New(), uuid.New(), itemIDs, testTime, testTime,
	)
	require.NoError(t, err)
	e.orders.put(o)
	return o
}

func TestExecutor_ExecuteRecordsSuccess(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusPending, 1)

	cmd := commands.NewConfirmCommand(env.deps, seeded.ID())
	result, err := env.executor.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, result.Status())

	stored, ok := env.orders.get(seeded.ID())
	require.True(t, ok)
	assert.Equal(t, order.StatusConfirmed, stored.Status())

	records := env.executor.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "confirm-order", records[0].Name)
	assert.Equal(t, testTime, records[0].ExecutedAt)
	assert.Equal(t, seeded.ID().String(), records[0].Result["order_id"])
	assert.Equal(t, "confirmed", records[0].Result["status"])
}

func TestExecutor_FailedCommandLeavesNoRecord(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusReturned, 1)

	_, err := env.executor.Execute(context.Background(), commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrTransitionNotAllowed)

	assert.Empty(t, env.executor.Records())
	assert.False(t, env.executor.CanUndo())
}

func TestExecutor_NilResultLeavesNoRecord(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.executor.Execute(context.Background(), &noopCommand{name: "noop"})
	require.Error(t, err)

	assert.Nil(t, result)
	assert.Empty(t, env.executor.Records())
	assert.False(t, env.executor.CanUndo())
}

func TestExecutor_UnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.executor.Execute(context.Background(), commands.NewConfirmCommand(env.deps, uuid.New()))
	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestExecutor_UndoRestoresExactState(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusDelivered, 1)
	before, _ := env.orders.get(seeded.ID())

	env.clk.Set(testTime.Add(48 * time.Hour))
	_, err := env.executor.Execute(context.Background(), commands.NewReturnCommand(env.deps, seeded.ID()))
	require.NoError(t, err)

	returned, _ := env.orders.get(seeded.ID())
	require.Equal(t, order.StatusReturned, returned.Status())
	require.NotNil(t, returned.ReturnDate())

	require.NoError(t, env.executor.Undo(context.Background()))

	after, _ := env.orders.get(seeded.ID())
	if diff := cmp.Diff(stateOf(before), stateOf(after)); diff != "" {
		t.Errorf("undo did not restore the order (-before +after):\n%s", diff)
	}
}

func TestExecutor_UndoWithEmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	err := env.executor.Undo(context.Background())
	assert.ErrorIs(t, err, errs.ErrUndoNotAvailable)
}

func TestExecutor_UndoFailureKeepsEntry(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusPending, 1)

	_, err := env.executor.Execute(context.Background(), commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.NoError(t, err)

	env.orders.failSave = errBoom
	err = env.executor.Undo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUndoFailed)

	// The entry stays on the executed stack so the undo can be retried.
	assert.True(t, env.executor.CanUndo())
	assert.False(t, env.executor.CanRedo())

	env.orders.failSave = nil
	require.NoError(t, env.executor.Undo(context.Background()))

	restored, _ := env.orders.get(seeded.ID())
	assert.Equal(t, order.StatusPending, restored.Status())
}

func TestExecutor_UndoRedoRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusPending, 1)
	ctx := context.Background()

	_, err := env.executor.Execute(ctx, commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.NoError(t, err)
	assert.True(t, env.executor.CanUndo())
	assert.False(t, env.executor.CanRedo())

	require.NoError(t, env.executor.Undo(ctx))
	assert.False(t, env.executor.CanUndo())
	assert.True(t, env.executor.CanRedo())

	pending, _ := env.orders.get(seeded.ID())
	assert.Equal(t, order.StatusPending, pending.Status())

	require.NoError(t, env.executor.Redo(ctx))
	assert.True(t, env.executor.CanUndo())
	assert.False(t, env.executor.CanRedo())

	confirmed, _ := env.orders.get(seeded.ID())
	assert.Equal(t, order.StatusConfirmed, confirmed.Status())
}

func TestExecutor_RedoWithEmptyStack(t *testing.T) {
	env := newTestEnv(t)
	err := env.executor.Redo(context.Background())
	assert.ErrorIs(t, err, errs.ErrRedoNotAvailable)
}

func TestExecutor_NewCommandClearsRedo(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusPending, 1)
	ctx := context.Background()

	_, err := env.executor.Execute(ctx, commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.NoError(t, err)
	require.NoError(t, env.executor.Undo(ctx))
	require.True(t, env.executor.CanRedo())

	_, err = env.executor.Execute(ctx, commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.NoError(t, err)
	assert.False(t, env.executor.CanRedo())
}

func TestExecutor_RedoFailureRestoresStack(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusPending, 1)
	ctx := context.Background()

	_, err := env.executor.Execute(ctx, commands.NewConfirmCommand(env.deps, seeded.ID()))
	require.NoError(t, err)
	require.NoError(t, env.executor.Undo(ctx))

	env.orders.failSave = errBoom
	err = env.executor.Redo(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRedoFailed)
	assert.True(t, env.executor.CanRedo())

	env.orders.failSave = nil
	require.NoError(t, env.executor.Redo(ctx))
}

func TestExecutor_DeliverTooEarly(t *testing.T) {
	env := newTestEnv(t)

	it, err := item.NewItem("gear", 1000)
	require.NoError(t, err)
	require.NoError(t, it.Reserve())
	env.items.put(it)

	o, err := order.ReconstructOrder(
		uuid.New(), 100, order.StatusConfirmed, testTime.Add(10*24*time.Hour), nil, 5000,
		uuid.New(), uuid.New(), []uuid.UUID{it.ID()}, testTime, testTime,
	)
	require.NoError(t, err)
	env.orders.put(o)

	_, err = env.executor.Execute(context.Background(), commands.NewDeliverCommand(env.deps, o.ID()))
	require.Error(t, err)

	var trErr *order.TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "too early to deliver", trErr.Reason)
	assert.Empty(t, env.executor.Records())
}

func TestCancelCommand_ReleasesAndRestoresItems(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedOrder(t, order.StatusConfirmed, 2)
	ctx := context.Background()

	itemIDs := seeded.ItemIDs()
	for _, id := range itemIDs {
		require.False(t, env.items.available(id))
	}

	_, err := env.executor.Execute(ctx, commands.NewCancelCommand(env.deps, seeded.ID()))
	require.NoError(t, err)
	for _, id := range itemIDs {
		assert.True(t, env.items.available(id), "cancel releases item %s", id)
	}

	require.NoError(t, env.executor.Undo(ctx))

	restored, _ := env.orders.get(seeded.ID())
	assert.Equal(t, order.StatusConfirmed, restored.Status())
	for _, id := range itemIDs {
		assert.False(t, env.items.available(id), "undo restores reservation of item %s", id)
	}
}

func TestCreateCommand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it, err := item.NewItem("camera", 3000)
	require.NoError(t, err)
	env.items.put(it)

	params := commands.CreateParams{
		RentalDate: testTime.Add(24 * time.Hour),
		TotalCents: 9000,
		CustomerID: uuid.New(),
		StaffID:    uuid.New(),
		ItemIDs:    []uuid.UUID{it.ID()},
	}

	t.Run("creates pending order and reserves items", func(t *testing.T) {
		created, err := env.executor.Execute(ctx, commands.NewCreateCommand(env.deps, params))
		require.NoError(t, err)

		assert.Equal(t, int64(1), created.OrderNumber())
		assert.Equal(t, order.StatusPending, created.Status())
		assert.False(t, env.items.available(it.ID()))

		stored, ok := env.orders.get(created.ID())
		require.True(t, ok)
		assert.Equal(t, created.ID(), stored.ID())
	})

	t.Run("reserved item cannot be ordered again", func(t *testing.T) {
		_, err := env.executor.Execute(ctx, commands.NewCreateCommand(env.deps, params))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("undo deletes the order and frees items", func(t *testing.T) {
		require.NoError(t, env.executor.Undo(context.Background()))
		assert.True(t, env.items.available(it.ID()))
	})

	t.Run("numbers are never reused after undo", func(t *testing.T) {
		created, err := env.executor.Execute(ctx, commands.NewCreateCommand(env.deps, params))
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.OrderNumber())
	})

	t.Run("unknown item", func(t *testing.T) {
		bad := params
		bad.ItemIDs = []uuid.UUID{uuid.New()}
		_, err := env.executor.Execute(ctx, commands.NewCreateCommand(env.deps, bad))
		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})
}
