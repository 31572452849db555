package order

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"rentalflow/internal/pkg/clock"
)

var ErrTransitionNotAllowed = errors.New("transition not allowed")

const (
	// Delivery may start at most this far ahead of the rental date.
	maxDeliveryLead = 7 * 24 * time.Hour
	// A return later than this after the rental date is flagged as late.
	lateReturnAfter = 3 * 24 * time.Hour
)

// TransitionError reports a rejected transition together with the order's
// current state and the transitions that would have been valid, so callers
// can self-correct without guessing.
type TransitionError struct {
	Current   Status
	Attempted Transition
	Allowed   []Transition
	Reason    string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s order in state %q: %s", e.Attempted, e.Current, e.Reason)
	}
	return fmt.Sprintf("cannot %s order in state %q (allowed: %v)", e.Attempted, e.Current, e.Allowed)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransitionNotAllowed
}

// TransitionResult is what a committed transition tells the caller beyond the
// mutated order itself. LateReturn is informational only and never blocks.
type TransitionResult struct {
	From       Status
	To         Status
	LateReturn bool
}

// EntryHook runs after an order enters a new state. Hook failures are the
// hook's own problem; the machine has already committed the transition.
type EntryHook func(o *Order, from, to Status)

// StateMachine owns the forward lifecycle rules. It is pure decision logic:
// persistence is the caller's concern.
type StateMachine struct {
	clock   clock.Clock
	onEnter EntryHook
}

func NewStateMachine(clk clock.Clock, opts ...Option) *StateMachine {
	m := &StateMachine{
		clock:   clk,
		onEnter: defaultEntryHook,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type Option func(*StateMachine)

func WithEntryHook(hook EntryHook) Option {
	return func(m *StateMachine) {
		m.onEnter = hook
	}
}

func defaultEntryHook(o *Order, from, to Status) {
	slog.Info("order entered state",
		"order_id", o.ID(),
		"order_number", o.OrderNumber(),
		"from", from.String(),
		"to", to.String())
}

// Apply validates and performs one lifecycle transition, mutating the order
// in place. The caller persists the result.
func (m *StateMachine) Apply(o *Order, tr Transition) (*TransitionResult, error) {
	next, ok := transitionTable[o.status][tr]
	if !ok {
		return nil, &TransitionError{
			Current:   o.status,
			Attempted: tr,
			Allowed:   m.AllowedTransitions(o),
		}
	}

	now := m.clock.Now()
	result := &TransitionResult{From: o.status, To: next}

	switch tr {
	case TransitionDeliver:
		if o.rentalDate.Sub(now) > maxDeliveryLead {
			return nil, &TransitionError{
				Current:   o.status,
				Attempted: tr,
				Allowed:   m.AllowedTransitions(o),
				Reason:    "too early to deliver",
			}
		}
	case TransitionReturn:
		if o.returnDate == nil {
			t := now
			o.returnDate = &t
		}
		result.LateReturn = o.returnDate.Sub(o.rentalDate) > lateReturnAfter
	}

	o.status = next
	if m.onEnter != nil {
		m.onEnter(o, result.From, next)
	}
	return result, nil
}

// AllowedTransitions lists the transitions valid from the order's current
// state, sorted for stable output.
func (m *StateMachine) AllowedTransitions(o *Order) []Transition {
	edges := transitionTable[o.status]
	out := make([]Transition, 0, len(edges))
	for tr := range edges {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateTransition reports whether target is reachable from the order's
// current state in a single step.
func (m *StateMachine) ValidateTransition(o *Order, target Status) bool {
	for _, next := range transitionTable[o.status] {
		if next == target {
			return true
		}
	}
	return false
}

// ReachableStates lists the states the order can move to in one step.
func (m *StateMachine) ReachableStates(o *Order) []Status {
	edges := transitionTable[o.status]
	out := make([]Status, 0, len(edges))
	for _, next := range edges {
		out = append(out, next)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *StateMachine) CanModify(o *Order) bool {
	return capabilityTable[o.status].modifiable
}

func (m *StateMachine) CanDelete(o *Order) bool {
	return capabilityTable[o.status].deletable
}
