package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/storefront/internal/config"
)

func TestNew_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNew_RequiresPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	_, err := New(context.Background(), mr.Addr(), "wrong", 0)
	assert.Error(t, err)

	client, err := New(context.Background(), mr.Addr(), "secret", 0)
	require.NoError(t, err)
	_ = client.Close()
}

func TestNew_UnreachableServer(t *testing.T) {
	original := pingTimeout
	pingTimeout = 200 * time.Millisecond
	t.Cleanup(func() { pingTimeout = original })

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestModuleConstructorsAndLifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{RedisAddress: mr.Addr(), SessionTTL: time.Minute}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := newClient(clientParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)

	repo := newSessionRepository(client, cfg)
	store, ok := repo.(*SessionStore)
	require.True(t, ok)
	assert.Equal(t, time.Minute, store.defaultTTL)

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, client)
	lc.RequireStart()
	lc.RequireStop()

	assert.Error(t, client.Ping(context.Background()).Err())
}

func TestRegisterLifecycleToleratesEmptyClient(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, &Client{})
	lc.RequireStart()
	lc.RequireStop()
}
