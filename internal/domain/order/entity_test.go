//go:build unit

package order_test

import (
	"testing"
	"time"

	"rentalflow/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	customerID := uuid.New()
	staffID := uuid.New()
	itemIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("basic success case", func(t *testing.T) {
		o, err := order.NewOrder(42, baseTime, 12000, customerID, staffID, itemIDs)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, int64(42), o.OrderNumber())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, baseTime, o.RentalDate())
		assert.Nil(t, o.ReturnDate())
		assert.Equal(t, int64(12000), o.TotalCents())
		assert.Equal(t, itemIDs, o.ItemIDs())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name        string
			orderNumber int64
			totalCents  int64
			itemIDs     []uuid.UUID
			errIs       error
		}{
			{name: "zero order number", orderNumber: 0, totalCents: 100, itemIDs: itemIDs, errIs: order.ErrInvalidOrderNo},
			{name: "negative order number", orderNumber: -1, totalCents: 100, itemIDs: itemIDs, errIs: order.ErrInvalidOrderNo},
			{name: "negative total", orderNumber: 1, totalCents: -1, itemIDs: itemIDs, errIs: order.ErrNegativeTotal},
			{name: "zero total is fine", orderNumber: 1, totalCents: 0, itemIDs: itemIDs},
			{name: "no items", orderNumber: 1, totalCents: 100, itemIDs: nil, errIs: order.ErrNoItems},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.orderNumber, baseTime, tc.totalCents, customerID, staffID, tc.itemIDs)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("item IDs are copied", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New()}
		o, err := order.NewOrder(1, baseTime, 100, customerID, staffID, ids)
		require.NoError(t, err)

		ids[0] = uuid.New()
		assert.NotEqual(t, ids[0], o.ItemIDs()[0])
	})
}

func TestReconstructOrder(t *testing.T) {
	returnDate := baseTime.Add(48 * time.Hour)

	cases := []struct {
		name       string
		status     order.Status
		returnDate *time.Time
		errIs      error
	}{
		{name: "pending without return date", status: order.StatusPending},
		{name: "returned with return date", status: order.StatusReturned, returnDate: &returnDate},
		{name: "returned without return date", status: order.StatusReturned, errIs: order.ErrReturnDateState},
		{name: "pending with return date", status: order.StatusPending, returnDate: &returnDate, errIs: order.ErrReturnDateState},
		{name: "unknown status", status: order.Status("shipped"), errIs: order.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := order.ReconstructOrder(
				uuid.New(), 7, tc.status, baseTime, tc.returnDate, 100,
				uuid.New(), uuid.New(), []uuid.UUID{uuid.New()},
				baseTime, baseTime,
			)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, o.Status())
		})
	}
}

func TestOrder_ForceState(t *testing.T) {
	t.Run("restores status and return date", func(t *testing.T) {
		o := orderInState(t, order.StatusReturned, baseTime)
		require.NotNil(t, o.ReturnDate())

		require.NoError(t, o.ForceState(order.StatusDelivered, nil))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Nil(t, o.ReturnDate())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		o := orderInState(t, order.StatusPending, baseTime)
		assert.ErrorIs(t, o.ForceState(order.Status("bogus"), nil), order.ErrInvalidStatus)
	})

	t.Run("return date is copied", func(t *testing.T) {
		o := orderInState(t, order.StatusDelivered, baseTime)
		rd := baseTime.Add(24 * time.Hour)
		require.NoError(t, o.ForceState(order.StatusReturned, &rd))

		rd = rd.Add(time.Hour)
		assert.NotEqual(t, rd, *o.ReturnDate())
	})
}
