package components

import (
	"bookstay/internal/handler"
	"bookstay/internal/handler/api"
	"bookstay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCalendarHandler,
		api.NewInventoryHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
