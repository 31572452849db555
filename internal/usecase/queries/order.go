package queries

import (
	"context"
	"time"

	"rentalflow/internal/domain/order"
	"rentalflow/internal/infra"
	"rentalflow/internal/infra/db"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

// OrderView is the read model handed to callers. AllowedTransitions and the
// capability flags are included so a caller whose transition was rejected
// can see what would have been valid.
type OrderView struct {
	ID                 uuid.UUID
	OrderNumber        int64
	Status             string
	RentalDate         time.Time
	ReturnDate         *time.Time
	TotalCents         int64
	CustomerID         uuid.UUID
	StaffID            uuid.UUID
	ItemIDs            []uuid.UUID
	AllowedTransitions []string
	CanModify          bool
	CanDelete          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	uow     shared.UnitOfWork
	orders  shared.OrderRepository
	machine *order.StateMachine
}

func NewOrderQueries(uow shared.UnitOfWork, orders shared.OrderRepository, machine *order.StateMachine) OrderQueries {
	return &orderQueriesImpl{
		uow:     uow,
		orders:  orders,
		machine: machine,
	}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	var o *order.Order
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		o, err = q.orders.FindByID(ctx, dbtx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return NewOrderView(o, q.machine), nil
}

// NewOrderView flattens an aggregate plus its machine-derived capabilities.
func NewOrderView(o *order.Order, machine *order.StateMachine) *OrderView {
	transitions := machine.AllowedTransitions(o)
	allowed := make([]string, 0, len(transitions))
	for _, tr := range transitions {
		allowed = append(allowed, tr.String())
	}

	return &OrderView{
		ID:                 o.ID(),
		OrderNumber:        o.OrderNumber(),
		Status:             o.Status().String(),
		RentalDate:         o.RentalDate(),
		ReturnDate:         o.ReturnDate(),
		TotalCents:         o.TotalCents(),
		CustomerID:         o.CustomerID(),
		StaffID:            o.StaffID(),
		ItemIDs:            o.ItemIDs(),
		AllowedTransitions: allowed,
		CanModify:          machine.CanModify(o),
		CanDelete:          machine.CanDelete(o),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}
