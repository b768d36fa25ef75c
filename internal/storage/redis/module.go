package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires the Redis client and the session repository.
var Module = fx.Options(
	fx.Provide(
		newClient,
		newSessionRepository,
	),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	client, err := New(p.Ctx, p.Config.RedisAddress, p.Config.RedisPassword, p.Config.RedisDB)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("redis session store ready", slog.String("addr", p.Config.RedisAddress))
	return client, nil
}

func newSessionRepository(client *Client, cfg *config.Config) repository.SessionRepository {
	return NewSessionStore(client.Client, cfg.SessionTTL)
}

func registerLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if client == nil || client.Client == nil {
				return nil
			}
			return client.Close()
		},
	})
}
