package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/storefront/internal/config"
)

func TestNewStorageUsesConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	_, err := newStorage(storageParams{
		Ctx:    context.Background(),
		Config: &config.Config{DatabaseURI: ":://bad"},
		Logger: logger,
	})
	if err == nil {
		t.Fatal("expected dsn parse error")
	}
}

func TestRegisterLifecycleClosesStorage(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectClose()

	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, storage)
	lc.RequireStart()
	lc.RequireStop()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
