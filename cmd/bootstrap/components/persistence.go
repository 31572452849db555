package components

import (
	"rentalflow/internal/events/observers"
	"rentalflow/internal/infra/repository"
	"rentalflow/internal/infra/uow"
	"rentalflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(shared.ItemRepository)),
		),
		fx.Annotate(
			repository.NewSequenceRepository,
			fx.As(new(shared.SequenceRepository)),
		),
		// Audit rows are written outside the command transaction, so the
		// repository takes the pool directly instead of a UnitOfWork.
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(observers.Recorder)),
		),
	),
)
