package components

import (
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogUseCase,
		commands.NewMarkdownUseCase,
		commands.NewReservationUseCase,
		commands.NewPickupUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewOfferQueries,
		queries.NewReservationQueries,
		queries.NewImpactQueries,
	),
)
