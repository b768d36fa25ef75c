// Package session issues anonymous storefront sessions that expire after
// the configured TTL.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const idBytes = 32

var randReader io.Reader = rand.Reader

// GenerateID returns a URL safe random session identifier.
func GenerateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Issuer creates sessions with a fixed lifetime.
type Issuer struct {
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Issuer{ttl: ttl, now: time.Now}
}

func newIssuerFromConfig(cfg *config.Config) *Issuer {
	return NewIssuer(cfg.SessionTTL)
}

// New returns an unbound session with a fresh identifier.
func (i *Issuer) New() (model.Session, error) {
	id, err := GenerateID()
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{ID: id, ExpiresAt: i.now().Add(i.ttl)}, nil
}

// Expired reports whether the session is past its expiry.
func (i *Issuer) Expired(s model.Session) bool {
	return !s.ExpiresAt.IsZero() && !i.now().Before(s.ExpiresAt)
}
