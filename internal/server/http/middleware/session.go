package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	// SessionContextKey is a gin context key for the resolved session.
	SessionContextKey = "session"
	// SessionCookieName carries the signed session token.
	SessionCookieName = "storefront_session"
)

// SessionResolver loads or creates the session behind a cookie token.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (model.Session, bool, error)
	SessionToken(sess model.Session) (string, error)
}

// SessionCookie holds attributes of the session cookie.
type SessionCookie struct {
	Secure bool
	TTL    time.Duration
}

// Set writes the token cookie.
func (sc SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(sc.TTL.Seconds()), "/", "", sc.Secure, true)
}

// Clear expires the token cookie in the browser.
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", sc.Secure, true)
}

// LoadSession resolves the session for every request and issues a cookie
// when a new one had to be created.
func LoadSession(resolver SessionResolver, cookie SessionCookie, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)

		sess, created, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			logger.Error("resolve session",
				slog.String("request_id", CurrentRequestID(c)),
				slog.String("error", err.Error()),
			)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if created {
			signed, err := resolver.SessionToken(sess)
			if err != nil {
				logger.Error("sign session", slog.String("error", err.Error()))
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			cookie.Set(c, signed)
		}

		SetCurrentSession(c, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession.
func CurrentSession(c *gin.Context) model.Session {
	val, ok := c.Get(SessionContextKey)
	if !ok {
		return model.Session{}
	}
	sess, _ := val.(model.Session)
	return sess
}

// SetCurrentSession replaces the session seen by later handlers.
func SetCurrentSession(c *gin.Context, sess model.Session) {
	c.Set(SessionContextKey, sess)
}
