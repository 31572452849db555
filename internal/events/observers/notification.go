package observers

import (
	"context"
	"fmt"
	"log/slog"

	"rentalflow/internal/events"
)

// Sender delivers a composed notification to the outside world. Delivery is
// best-effort; there is no exactly-once guarantee for email/SMS.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// LogSender is the default Sender used when no external channel is wired.
type LogSender struct{}

func (LogSender) Send(_ context.Context, subject, body string) error {
	slog.Info("notification sent", "subject", subject, "body", body)
	return nil
}

// NotificationObserver composes and sends a customer-facing message for
// every lifecycle event.
type NotificationObserver struct {
	sender Sender
}

func NewNotificationObserver(sender Sender) *NotificationObserver {
	return &NotificationObserver{sender: sender}
}

func (o *NotificationObserver) Name() string {
	return "notification"
}

// Empty set: notified of every event type.
func (o *NotificationObserver) SubscribedTo() []events.Type {
	return nil
}

func (o *NotificationObserver) Update(ctx context.Context, ev events.Event) error {
	subject := fmt.Sprintf("Order #%d %s", ev.Order.OrderNumber, verbFor(ev.Type))
	body := fmt.Sprintf("Your rental order #%d is now %s.", ev.Order.OrderNumber, ev.Order.Status)
	if ev.Meta(events.MetaLateReturn) == "true" {
		body += " The return was recorded as late."
	}
	return o.sender.Send(ctx, subject, body)
}

func verbFor(t events.Type) string {
	switch t {
	case events.TypeOrderCreated:
		return "created"
	case events.TypeOrderConfirmed:
		return "confirmed"
	case events.TypeOrderDelivered:
		return "delivered"
	case events.TypeOrderReturned:
		return "returned"
	case events.TypeOrderCancelled:
		return "cancelled"
	default:
		return "updated"
	}
}
