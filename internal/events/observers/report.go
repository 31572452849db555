package observers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rentalflow/internal/events"

	"github.com/google/uuid"
)

// ReportLine is one generated entry for completed or aborted rentals.
type ReportLine struct {
	OrderID     uuid.UUID
	OrderNumber int64
	Outcome     string
	LateReturn  bool
	TotalCents  int64
	GeneratedAt time.Time
}

func (l ReportLine) String() string {
	late := ""
	if l.LateReturn {
		late = " (late return)"
	}
	return fmt.Sprintf("order #%d %s%s, total %d cents", l.OrderNumber, l.Outcome, late, l.TotalCents)
}

// ReportObserver accumulates report lines for terminal events only.
type ReportObserver struct {
	mu    sync.Mutex
	lines []ReportLine
}

func NewReportObserver() *ReportObserver {
	return &ReportObserver{}
}

func (o *ReportObserver) Name() string {
	return "report"
}

func (o *ReportObserver) SubscribedTo() []events.Type {
	return []events.Type{events.TypeOrderReturned, events.TypeOrderCancelled}
}

func (o *ReportObserver) Update(_ context.Context, ev events.Event) error {
	line := ReportLine{
		OrderID:     ev.Order.ID,
		OrderNumber: ev.Order.OrderNumber,
		Outcome:     ev.Order.Status.String(),
		LateReturn:  ev.Meta(events.MetaLateReturn) == "true",
		TotalCents:  ev.Order.TotalCents,
		GeneratedAt: ev.OccurredAt,
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line)
	return nil
}

func (o *ReportObserver) Lines() []ReportLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]ReportLine(nil), o.lines...)
}
