package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const sessionPrefix = "session:"

// SessionStore persists sessions as JSON values with a TTL.
type SessionStore struct {
	client     goredis.Cmdable
	prefix     string
	defaultTTL time.Duration
	now        func() time.Time
}

func NewSessionStore(client goredis.Cmdable, defaultTTL time.Duration) *SessionStore {
	return &SessionStore{
		client:     client,
		prefix:     sessionPrefix,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + id
}

func (s *SessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, domainErrors.ErrNotFound
	}
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domainErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domainErrors.ErrInvalidSession, err)
	}
	if sess.ID == "" {
		sess.ID = id
	}
	return &sess, nil
}

// Save overwrites the stored value. A session already past its expiry is removed instead.
func (s *SessionStore) Save(ctx context.Context, sess model.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("%w: missing id", domainErrors.ErrInvalidSession)
	}

	ttl := s.defaultTTL
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx, sess.ID)
		}
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, s.key(sess.ID), data, ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(id)).Err()
}
