package events

import (
	"time"

	"rentalflow/internal/domain/order"

	"github.com/google/uuid"
)

// Type identifies a lifecycle event on the bus.
type Type string

const (
	TypeOrderCreated   Type = "order.created"
	TypeOrderConfirmed Type = "order.confirmed"
	TypeOrderDelivered Type = "order.delivered"
	TypeOrderReturned  Type = "order.returned"
	TypeOrderCancelled Type = "order.cancelled"
)

func (t Type) String() string {
	return string(t)
}

// Metadata keys set by the command layer.
const (
	MetaPriorState = "prior_state"
	MetaLateReturn = "late_return"
)

// TypeForTransition maps a committed transition to its event type.
func TypeForTransition(tr order.Transition) Type {
	switch tr {
	case order.TransitionConfirm:
		return TypeOrderConfirmed
	case order.TransitionDeliver:
		return TypeOrderDelivered
	case order.TransitionReturn:
		return TypeOrderReturned
	case order.TransitionCancel:
		return TypeOrderCancelled
	default:
		return Type("order." + tr.String())
	}
}

// OrderSnapshot is the immutable view of an order handed to observers.
// Observers never see the aggregate itself.
type OrderSnapshot struct {
	ID          uuid.UUID
	OrderNumber int64
	Status      order.Status
	RentalDate  time.Time
	ReturnDate  *time.Time
	TotalCents  int64
	CustomerID  uuid.UUID
}

// SnapshotOf flattens an order aggregate for event delivery.
func SnapshotOf(o *order.Order) OrderSnapshot {
	return OrderSnapshot{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		Status:      o.Status(),
		RentalDate:  o.RentalDate(),
		ReturnDate:  o.ReturnDate(),
		TotalCents:  o.TotalCents(),
		CustomerID:  o.CustomerID(),
	}
}

// Event is built per notification cycle and is not persisted by the core;
// persistence, if any, is an observer's responsibility.
type Event struct {
	Type       Type
	Order      OrderSnapshot
	OccurredAt time.Time
	Metadata   map[string]string
}

func (e Event) Meta(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}
