package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func setupTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, 30*time.Minute), mr
}

func TestSave_WritesJSONWithTTL(t *testing.T) {
	store, mr := setupTestStore(t)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := model.Session{ID: "abc", Username: "alice", TotalQty: 5, ExpiresAt: now.Add(10 * time.Minute)}
	require.NoError(t, store.Save(context.Background(), sess))

	raw, err := mr.Get("session:abc")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "alice", decoded["custSession"])
	assert.Equal(t, float64(5), decoded["totalQty"])
	assert.Equal(t, 10*time.Minute, mr.TTL("session:abc"))
}

func TestSave_ZeroExpiryUsesDefaultTTL(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Save(context.Background(), model.Session{ID: "anon"}))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:anon"))
}

func TestSave_ExpiredSessionIsRemoved(t *testing.T) {
	store, mr := setupTestStore(t)
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, mr.Set("session:old", `{"id":"old"}`))
	require.NoError(t, store.Save(context.Background(), model.Session{ID: "old", ExpiresAt: now.Add(-time.Second)}))
	assert.False(t, mr.Exists("session:old"))
}

func TestSave_MissingID(t *testing.T) {
	store, _ := setupTestStore(t)

	err := store.Save(context.Background(), model.Session{Username: "alice"})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidSession)
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.Session{ID: "s1", Username: "alice", TotalQty: 3}))
	require.NoError(t, store.Save(ctx, model.Session{ID: "s1", Username: "bob", TotalQty: 1}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, 1, got.TotalQty)
}

func TestGet_Miss(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.Nil(t, got)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestGet_InvalidJSON(t *testing.T) {
	store, mr := setupTestStore(t)
	require.NoError(t, mr.Set("session:broken", "{not json"))

	_, err := store.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidSession)
}

func TestGet_FillsMissingID(t *testing.T) {
	store, mr := setupTestStore(t)
	require.NoError(t, mr.Set("session:legacy", `{"custSession":"carol","totalQty":2}`))

	got, err := store.Get(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, "legacy", got.ID)
	assert.Equal(t, "carol", got.Username)
	assert.Equal(t, 2, got.TotalQty)
}

func TestGet_ExpiresWithTTL(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.Session{ID: "short"}))
	mr.FastForward(31 * time.Minute)

	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestGet_ConnectionError(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "any")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.Session{ID: "bye", Username: "alice"}))
	require.NoError(t, store.Delete(ctx, "bye"))
	assert.False(t, mr.Exists("session:bye"))

	assert.NoError(t, store.Delete(ctx, "bye"))
	assert.NoError(t, store.Delete(ctx, ""))
}
