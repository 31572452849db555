package response

import (
	"time"

	"rentalflow/internal/usecase/commands"
	"rentalflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID                 uuid.UUID   `json:"id"`
	OrderNumber        int64       `json:"orderNumber"`
	Status             string      `json:"status"`
	RentalDate         time.Time   `json:"rentalDate"`
	ReturnDate         *time.Time  `json:"returnDate,omitempty"`
	TotalCents         int64       `json:"totalCents"`
	CustomerID         uuid.UUID   `json:"customerId"`
	StaffID            uuid.UUID   `json:"staffId"`
	ItemIDs            []uuid.UUID `json:"itemIds"`
	AllowedTransitions []string    `json:"allowedTransitions"`
	CanModify          bool        `json:"canModify"`
	CanDelete          bool        `json:"canDelete"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	// Field names line up with the view; keep the mapping mechanical.
	if err := copier.Copy(&resp, view); err != nil {
		return &OrderResponse{ID: view.ID, OrderNumber: view.OrderNumber, Status: view.Status}
	}
	return &resp
}

type CommandRecordResponse struct {
	Name       string         `json:"name"`
	Params     map[string]any `json:"params"`
	ExecutedAt time.Time      `json:"executedAt"`
	Result     map[string]any `json:"result,omitempty"`
}

type HistoryResponse struct {
	Records []CommandRecordResponse `json:"records"`
	CanUndo bool                    `json:"canUndo"`
	CanRedo bool                    `json:"canRedo"`
}

func FromCommandRecords(records []commands.CommandRecord, canUndo, canRedo bool) *HistoryResponse {
	out := make([]CommandRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, CommandRecordResponse{
			Name:       rec.Name,
			Params:     rec.Params,
			ExecutedAt: rec.ExecutedAt,
			Result:     rec.Result,
		})
	}
	return &HistoryResponse{Records: out, CanUndo: canUndo, CanRedo: canRedo}
}

type SequenceResponse struct {
	Name      string `json:"name"`
	LastValue int64  `json:"lastValue"`
}
