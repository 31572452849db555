//go:build unit

package sequence_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type passthroughUoW struct{}

func (passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (passthroughUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (passthroughUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type memSequenceRepo struct {
	mu       sync.Mutex
	counters map[string]int64

	failIncrement error
}

func newMemSequenceRepo() *memSequenceRepo {
	return &memSequenceRepo{counters: make(map[string]int64)}
}

func (r *memSequenceRepo) Increment(_ context.Context, _ db.DBTX, name string) (int64, error) {
	if r.failIncrement != nil {
		return 0, r.failIncrement
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return r.counters[name], nil
}

func (r *memSequenceRepo) Peek(_ context.Context, _ db.DBTX, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[name], nil
}

func (r *memSequenceRepo) Reset(_ context.Context, _ db.DBTX, name string, value int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name] = value
	return nil
}

func TestGenerator_Next(t *testing.T) {
	ctx := context.Background()
	gen := sequence.NewGenerator(passthroughUoW{}, newMemSequenceRepo())

	first, err := gen.Next(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := gen.Next(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestGenerator_IndependentCounters(t *testing.T) {
	ctx := context.Background()
	gen := sequence.NewGenerator(passthroughUoW{}, newMemSequenceRepo())

	_, err := gen.Next(ctx, "invoices")
	require.NoError(t, err)

	n, err := gen.Next(ctx, "receipts")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counters are per name")
}

func TestGenerator_FailureIsMarked(t *testing.T) {
	repo := newMemSequenceRepo()
	repo.failIncrement = errs.New("serialization conflict")
	gen := sequence.NewGenerator(passthroughUoW{}, repo)

	_, err := gen.Next(context.Background(), sequence.CounterOrderNumber)
	require.Error(t, err)
	assert.ErrorIs(t, err, sequence.ErrGenerationFailed)

	// The failed call must not have consumed a number.
	repo.failIncrement = nil
	n, err := gen.Next(context.Background(), sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// Concurrent callers must observe strictly unique, contiguous values.
func TestGenerator_ConcurrentCallers(t *testing.T) {
	const callers = 64

	ctx := context.Background()
	gen := sequence.NewGenerator(passthroughUoW{}, newMemSequenceRepo())

	var mu sync.Mutex
	got := make([]int64, 0, callers)

	g := &errgroup.Group{}
	for range callers {
		g.Go(func() error {
			n, err := gen.Next(ctx, sequence.CounterOrderNumber)
			if err != nil {
				return err
			}
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Len(t, got, callers)
	for i, n := range got {
		assert.Equal(t, int64(i+1), n, "values must be unique and gap-free")
	}
}

func TestGenerator_PeekAndReset(t *testing.T) {
	ctx := context.Background()
	gen := sequence.NewGenerator(passthroughUoW{}, newMemSequenceRepo())

	value, err := gen.Peek(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(0), value, "unused counter peeks as zero")

	_, err = gen.Next(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)

	value, err = gen.Peek(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)

	require.NoError(t, gen.Reset(ctx, sequence.CounterOrderNumber, 100))

	n, err := gen.Next(ctx, sequence.CounterOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(101), n)
}
