package observers

import (
	"context"
	"time"

	"rentalflow/internal/events"
	"rentalflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// AuditEntry is one appended audit record. Persistence happens through the
// Recorder; the core itself never stores events.
type AuditEntry struct {
	OrderID     uuid.UUID
	OrderNumber int64
	EventType   string
	PriorState  string
	NewState    string
	OccurredAt  time.Time
}

type Recorder interface {
	Append(ctx context.Context, entry AuditEntry) error
}

// AuditObserver appends one record per lifecycle event.
type AuditObserver struct {
	recorder Recorder
}

func NewAuditObserver(recorder Recorder) *AuditObserver {
	return &AuditObserver{recorder: recorder}
}

func (o *AuditObserver) Name() string {
	return "audit"
}

func (o *AuditObserver) SubscribedTo() []events.Type {
	return nil
}

func (o *AuditObserver) Update(ctx context.Context, ev events.Event) error {
	entry := AuditEntry{
		OrderID:     ev.Order.ID,
		OrderNumber: ev.Order.OrderNumber,
		EventType:   ev.Type.String(),
		PriorState:  ev.Meta(events.MetaPriorState),
		NewState:    ev.Order.Status.String(),
		OccurredAt:  ev.OccurredAt,
	}
	return errs.Wrap(o.recorder.Append(ctx, entry), "failed to append audit entry")
}
