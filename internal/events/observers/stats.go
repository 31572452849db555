package observers

import (
	"context"
	"sync"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/events"
)

// StatsObserver maintains live in-memory aggregates for a dashboard: a count
// per event type plus a gauge of how many orders sit in each state.
//
// The state gauge decrements the bucket named by the event's prior_state
// metadata, never a guessed one; the command layer always captures the actual
// prior state at transition time.
type StatsObserver struct {
	mu      sync.Mutex
	byEvent map[events.Type]int64
	byState map[order.Status]int64
}

func NewStatsObserver() *StatsObserver {
	return &StatsObserver{
		byEvent: make(map[events.Type]int64),
		byState: make(map[order.Status]int64),
	}
}

func (o *StatsObserver) Name() string {
	return "dashboard-stats"
}

func (o *StatsObserver) SubscribedTo() []events.Type {
	return nil
}

func (o *StatsObserver) Update(_ context.Context, ev events.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.byEvent[ev.Type]++
	o.byState[ev.Order.Status]++

	if prior := ev.Meta(events.MetaPriorState); prior != "" {
		o.byState[order.Status(prior)]--
	}
	return nil
}

// EventCount returns how many events of the given type were observed.
func (o *StatsObserver) EventCount(t events.Type) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.byEvent[t]
}

// StateCount returns the live count of orders currently in the given state,
// as seen through the event stream.
func (o *StatsObserver) StateCount(s order.Status) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.byState[s]
}

// Snapshot copies both aggregate maps for rendering.
func (o *StatsObserver) Snapshot() (map[events.Type]int64, map[order.Status]int64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	byEvent := make(map[events.Type]int64, len(o.byEvent))
	for k, v := range o.byEvent {
		byEvent[k] = v
	}
	byState := make(map[order.Status]int64, len(o.byState))
	for k, v := range o.byState {
		byState[k] = v
	}
	return byEvent, byState
}
