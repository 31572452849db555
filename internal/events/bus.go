package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/config"

	"golang.org/x/sync/errgroup"
)

// Observer is an independent side-effect handler. An empty SubscribedTo set
// means the observer receives every event type.
type Observer interface {
	Name() string
	SubscribedTo() []Type
	Update(ctx context.Context, ev Event) error
}

const maxConcurrentNotify = 8

// Bus fans committed lifecycle events out to attached observers. Delivery is
// best-effort and side-channel only: the authoritative state change has
// already been committed by the command layer by the time Notify runs, so
// observer failures are logged and contained, never propagated.
type Bus struct {
	mu        sync.RWMutex
	observers map[string]Observer
	names     []string // attach order, for stable listing

	clock   clock.Clock
	timeout time.Duration
}

func NewBus(cfg config.EventsConfig, clk clock.Clock) *Bus {
	return &Bus{
		observers: make(map[string]Observer),
		clock:     clk,
		timeout:   cfg.NotifyTimeout,
	}
}

// Attach registers an observer. Attaching a second observer with the same
// name is a no-op, keeping the registry free of duplicates.
func (b *Bus) Attach(o Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.observers[o.Name()]; ok {
		return
	}
	b.observers[o.Name()] = o
	b.names = append(b.names, o.Name())
}

func (b *Bus) Detach(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.observers[name]; !ok {
		return
	}
	delete(b.observers, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
}

func (b *Bus) Observers() []Observer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Observer, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.observers[name])
	}
	return out
}

// Notify builds the event and dispatches it to every matching observer
// concurrently. Each observer runs isolated: a panic or error in one never
// reaches the others or the caller. Waiting is bounded by the configured
// timeout; stragglers finish in the background.
func (b *Bus) Notify(ctx context.Context, t Type, snap OrderSnapshot, metadata map[string]string) {
	ev := Event{
		Type:       t,
		Order:      snap,
		OccurredAt: b.clock.Now(),
		Metadata:   metadata,
	}

	targets := b.matching(t)
	if len(targets) == 0 {
		return
	}

	// Detach from the caller's cancellation: delivery should not be dropped
	// because the originating request finished first.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)

	g := &errgroup.Group{}
	g.SetLimit(maxConcurrentNotify)
	for _, obs := range targets {
		g.Go(func() error {
			b.deliver(notifyCtx, obs, ev)
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		defer cancel()
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-notifyCtx.Done():
		slog.Warn("event notification timed out, continuing in background",
			"event_type", t.String(),
			"order_id", snap.ID)
	}
}

func (b *Bus) deliver(ctx context.Context, obs Observer, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("observer panicked",
				"observer", obs.Name(),
				"event_type", ev.Type.String(),
				"panic", r)
		}
	}()

	if err := obs.Update(ctx, ev); err != nil {
		slog.Error("observer failed",
			"observer", obs.Name(),
			"event_type", ev.Type.String(),
			"order_id", ev.Order.ID,
			"error", err.Error())
	}
}

func (b *Bus) matching(t Type) []Observer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Observer, 0, len(b.names))
	for _, name := range b.names {
		obs := b.observers[name]
		if subscribed(obs, t) {
			out = append(out, obs)
		}
	}
	return out
}

func subscribed(obs Observer, t Type) bool {
	subs := obs.SubscribedTo()
	if len(subs) == 0 {
		return true
	}
	for _, s := range subs {
		if s == t {
			return true
		}
	}
	return false
}
