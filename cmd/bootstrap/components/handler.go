package components

import (
	"rentalflow/internal/handler"
	"rentalflow/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewSequenceHandler,
		api.NewDashboardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
