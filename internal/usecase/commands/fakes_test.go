//go:build unit

package commands_test

import (
	"context"
	"sync"

	"rentalflow/internal/domain/item"
	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// fakeUoW runs the span directly; the in-memory repositories below are their
// own source of truth, so there is no transaction to manage.
type fakeUoW struct{}

func (fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*order.Order

	failSave   error
	failCreate error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*order.Order)}
}

// copyOrder returns an independent aggregate so callers never mutate the
// stored state before Save.
func copyOrder(o *order.Order) *order.Order {
	cp, err := order.ReconstructOrder(
		o.ID(), o.OrderNumber(), o.Status(), o.RentalDate(), o.ReturnDate(),
		o.TotalCents(), o.CustomerID(), o.StaffID(), o.ItemIDs(),
		o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return cp
}

func (r *fakeOrderRepo) FindByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return copyOrder(o), nil
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r *fakeOrderRepo) Save(_ context.Context, _ db.DBTX, o *order.Order) error {
	if r.failSave != nil {
		return r.failSave
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID()]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	r.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) get(id uuid.UUID) (*order.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, false
	}
	return copyOrder(o), true
}

func (r *fakeOrderRepo) put(o *order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = copyOrder(o)
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*item.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*item.Item)}
}

func copyItem(i *item.Item) *item.Item {
	return item.ReconstructItem(i.ID(), i.Name(), i.DailyRateCents(), i.Available(), i.CreatedAt(), i.UpdatedAt())
}

func (r *fakeItemRepo) FindByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) ([]*item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*item.Item, 0, len(ids))
	for _, id := range ids {
		i, ok := r.items[id]
		if !ok {
			return nil, infra.WrapRepoErr("some items not found", nil, infra.KindNotFound)
		}
		out = append(out, copyItem(i))
	}
	return out, nil
}

func (r *fakeItemRepo) SaveAvailability(_ context.Context, _ db.DBTX, id uuid.UUID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.items[id]
	if !ok {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	i.SetAvailability(available)
	return nil
}

func (r *fakeItemRepo) put(i *item.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[i.ID()] = copyItem(i)
}

func (r *fakeItemRepo) available(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.items[id]
	return ok && i.Available()
}

// fakeGenerator issues sequential numbers without touching a database.
type fakeGenerator struct {
	mu   sync.Mutex
	last int64
	fail error
}

func (g *fakeGenerator) Next(_ context.Context, _ string) (int64, error) {
	if g.fail != nil {
		return 0, g.fail
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last++
	return g.last, nil
}

func (g *fakeGenerator) Peek(_ context.Context, _ string) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last, nil
}

func (g *fakeGenerator) Reset(_ context.Context, _ string, value int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = value
	return nil
}

var errBoom = errs.New("boom")
