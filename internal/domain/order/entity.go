package order

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrNegativeTotal     = errors.New("total cannot be negative")
	ErrNoItems           = errors.New("order must reference at least one item")
	ErrReturnDateState   = errors.New("return date is only valid on returned orders")
	ErrInvalidOrderNo    = errors.New("order number must be positive")
	ErrOrderNumberExists = errors.New("order number already assigned")
)

// Order is the rental service aggregate. The sequence number is assigned
// exactly once at creation and never changes afterwards, even if the order
// is later cancelled or deleted.
type Order struct {
	id          uuid.UUID
	orderNumber int64
	status      Status
	rentalDate  time.Time
	returnDate  *time.Time
	totalCents  int64
	customerID  uuid.UUID
	staffID     uuid.UUID
	itemIDs     []uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrder(
	orderNumber int64,
	rentalDate time.Time,
	totalCents int64,
	customerID, staffID uuid.UUID,
	itemIDs []uuid.UUID,
) (*Order, error) {
	if orderNumber <= 0 {
		return nil, ErrInvalidOrderNo
	}
	if totalCents < 0 {
		return nil, ErrNegativeTotal
	}
	if len(itemIDs) == 0 {
		return nil, ErrNoItems
	}

	return &Order{
		id:          uuid.New(),
		orderNumber: orderNumber,
		status:      StatusPending,
		rentalDate:  rentalDate,
		totalCents:  totalCents,
		customerID:  customerID,
		staffID:     staffID,
		itemIDs:     append([]uuid.UUID(nil), itemIDs...),
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	orderNumber int64,
	status Status,
	rentalDate time.Time,
	returnDate *time.Time,
	totalCents int64,
	customerID, staffID uuid.UUID,
	itemIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if (returnDate != nil) != (status == StatusReturned) {
		return nil, ErrReturnDateState
	}

	return &Order{
		id:          id,
		orderNumber: orderNumber,
		status:      status,
		rentalDate:  rentalDate,
		returnDate:  returnDate,
		totalCents:  totalCents,
		customerID:  customerID,
		staffID:     staffID,
		itemIDs:     append([]uuid.UUID(nil), itemIDs...),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) OrderNumber() int64    { return o.orderNumber }
func (o *Order) Status() Status        { return o.status }
func (o *Order) RentalDate() time.Time { return o.rentalDate }
func (o *Order) ReturnDate() *time.Time {
	if o.returnDate == nil {
		return nil
	}
	t := *o.returnDate
	return &t
}
func (o *Order) TotalCents() int64     { return o.totalCents }
func (o *Order) CustomerID() uuid.UUID { return o.customerID }
func (o *Order) StaffID() uuid.UUID    { return o.staffID }
func (o *Order) ItemIDs() []uuid.UUID  { return append([]uuid.UUID(nil), o.itemIDs...) }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) UpdatedAt() time.Time  { return o.updatedAt }

// ForceState restores a prior state without consulting the transition table.
// This is the privileged path used by command undo; it is not a lifecycle
// transition and must never be reachable from user-facing flows.
func (o *Order) ForceState(status Status, returnDate *time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if o.status.IsTerminal() && status != o.status {
		// Never expected in correct operation; undo of the terminal-entering
		// command itself is the only caller that lands here.
		slog.Warn("leaving terminal state",
			"order_id", o.id,
			"from", o.status.String(),
			"to", status.String())
	}
	o.status = status
	if returnDate == nil {
		o.returnDate = nil
	} else {
		t := *returnDate
		o.returnDate = &t
	}
	return nil
}
