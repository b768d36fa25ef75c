package auth

import (
	"log/slog"

	"github.com/polkiloo/storefront/internal/config"
	"go.uber.org/fx"
)

// Module provides password hashing and session token signing via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	strategy := NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
	p.Logger.Info("session token strategy configured", slog.String("strategy", strategy.Name()))
	return strategy
}
