package request

import (
	"time"

	"rentalflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	RentalDate time.Time   `json:"rental_date" binding:"required"`
	TotalCents int64       `json:"total_cents" binding:"min=0"`
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	StaffID    uuid.UUID   `json:"staff_id" binding:"required"`
	ItemIDs    []uuid.UUID `json:"item_ids" binding:"required,min=1"`
}

func (r CreateOrderRequest) ToParams() commands.CreateParams {
	return commands.CreateParams{
		RentalDate: r.RentalDate,
		TotalCents: r.TotalCents,
		CustomerID: r.CustomerID,
		StaffID:    r.StaffID,
		ItemIDs:    r.ItemIDs,
	}
}

type ResetSequenceRequest struct {
	Value int64 `json:"value" binding:"min=0"`
}
