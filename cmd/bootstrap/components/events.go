package components

import (
	"rentalflow/internal/events"
	"rentalflow/internal/events/observers"
	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		func(cfg config.Config, clk clock.Clock) *events.Bus {
			return events.NewBus(cfg.Events, clk)
		},
		func() observers.Sender {
			return observers.LogSender{}
		},
		observers.NewNotificationObserver,
		observers.NewAuditObserver,
		observers.NewStatsObserver,
		observers.NewReportObserver,
	),
	fx.Invoke(attachObservers),
)

func attachObservers(
	bus *events.Bus,
	notification *observers.NotificationObserver,
	audit *observers.AuditObserver,
	stats *observers.StatsObserver,
	report *observers.ReportObserver,
) {
	bus.Attach(notification)
	bus.Attach(audit)
	bus.Attach(stats)
	bus.Attach(report)
}
