package sequence

import (
	"context"
	"sync"

	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/shared"
)

// CounterOrderNumber names the counter backing human-facing order numbers.
const CounterOrderNumber = "rental-order"

var ErrGenerationFailed = errs.New("sequence generation failed")

// Generator issues strictly increasing integers per named counter. Next is
// safe under unbounded concurrent callers, including callers in other
// processes sharing the same database.
type Generator interface {
	// Next returns a value strictly greater than every value previously
	// returned for name. On transactional failure the call fails whole with
	// ErrGenerationFailed and may be retried by the caller; no partial
	// increment is ever visible to others.
	Next(ctx context.Context, name string) (int64, error)
	// Peek reads the last issued value without locking; may be stale.
	Peek(ctx context.Context, name string) (int64, error)
	// Reset upserts the counter. Administrative only; not safe to call
	// concurrently with Next.
	Reset(ctx context.Context, name string, value int64) error
}

// generator's correctness comes entirely from the transactional row lock the
// repository takes. The per-name in-process mutex only keeps a hot process
// from piling its own callers onto the database lock queue; multi-process
// deployments are serialized by the row lock alone.
type generator struct {
	uow  shared.UnitOfWork
	repo shared.SequenceRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGenerator(uow shared.UnitOfWork, repo shared.SequenceRepository) Generator {
	return &generator{
		uow:   uow,
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

func (g *generator) Next(ctx context.Context, name string) (int64, error) {
	lock := g.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	var next int64
	err := g.uow.WithinSerializable(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		next, err = g.repo.Increment(ctx, tx, name)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrGenerationFailed)
	}
	return next, nil
}

func (g *generator) Peek(ctx context.Context, name string) (int64, error) {
	var value int64
	err := g.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		value, err = g.repo.Peek(ctx, dbtx, name)
		return err
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (g *generator) Reset(ctx context.Context, name string, value int64) error {
	return g.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return g.repo.Reset(ctx, dbtx, name, value)
	})
}

func (g *generator) lockFor(name string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	lock, ok := g.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[name] = lock
	}
	return lock
}
