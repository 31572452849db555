package components

import (
	"rentalflow/internal/domain/order"
	"rentalflow/internal/pkg/clock"
	"rentalflow/internal/pkg/config"
	"rentalflow/internal/usecase/commands"
	"rentalflow/internal/usecase/queries"
	"rentalflow/internal/usecase/sequence"
	"rentalflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *order.StateMachine {
		return order.NewStateMachine(clk)
	},
	sequence.NewGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config) *commands.History {
			return commands.NewHistory(cfg.History.Capacity)
		},
		commands.NewExecutor,
		func(uow shared.UnitOfWork, orders shared.OrderRepository, items shared.ItemRepository, machine *order.StateMachine, gen sequence.Generator, clk clock.Clock) commands.Deps {
			return commands.Deps{
				UoW:       uow,
				Orders:    orders,
				Items:     items,
				Machine:   machine,
				Generator: gen,
				Clock:     clk,
			}
		},
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)
