package order

// Status is the lifecycle state of a rental order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusReturned || s == StatusCancelled
}

// Transition is an edge of the order lifecycle.
type Transition string

const (
	TransitionConfirm Transition = "confirm"
	TransitionDeliver Transition = "deliver"
	TransitionReturn  Transition = "return"
	TransitionCancel  Transition = "cancel"
)

func (t Transition) String() string {
	return string(t)
}

// transitionTable is the single source of truth for the forward lifecycle:
// state x transition -> next state. Anything absent is rejected.
var transitionTable = map[Status]map[Transition]Status{
	StatusPending: {
		TransitionConfirm: StatusConfirmed,
		TransitionCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		TransitionDeliver: StatusDelivered,
		TransitionCancel:  StatusCancelled,
	},
	StatusDelivered: {
		TransitionReturn: StatusReturned,
	},
	StatusReturned:  {},
	StatusCancelled: {},
}

// capabilities carries the per-state flags consumed by the HTTP layer
// to decide whether an order may still be edited or removed.
type capabilities struct {
	modifiable bool
	deletable  bool
}

var capabilityTable = map[Status]capabilities{
	StatusPending:   {modifiable: true, deletable: true},
	StatusConfirmed: {modifiable: true, deletable: false},
	StatusDelivered: {modifiable: false, deletable: false},
	StatusReturned:  {modifiable: false, deletable: false},
	StatusCancelled: {modifiable: false, deletable: true},
}
