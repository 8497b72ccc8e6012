package bootstrap

import (
	"bookstay/internal/pkg/clock"
	"bookstay/internal/pkg/config"
	"bookstay/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTManager,
	),
)

func NewJWTManager(cfg config.Config, clk clock.Clock) *jwt.Manager {
	return jwt.NewManager(cfg.JWT, clk)
}
