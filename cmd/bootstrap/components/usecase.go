package components

import (
	"bookstay/internal/pkg/clock"
	"bookstay/internal/pkg/config"
	"bookstay/internal/usecase"
	"bookstay/internal/usecase/commands"
	"bookstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.PaymentConfig {
		return cfg.Payment
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCalendarQueries,
		usecase.NewPaymentUseCase,
	),
)
