package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/session"
	"github.com/polkiloo/storefront/internal/usecase"
)

// StorefrontFacade joins the customer workflow with session persistence
// and cookie token signing.
type StorefrontFacade struct {
	customers *usecase.CustomerUseCase
	sessions  repository.SessionRepository
	issuer    *session.Issuer
	tokens    pkgAuth.Strategy
	logger    *slog.Logger
}

func NewStorefrontFacade(
	customers *usecase.CustomerUseCase,
	sessions repository.SessionRepository,
	issuer *session.Issuer,
	tokens pkgAuth.Strategy,
	logger *slog.Logger,
) *StorefrontFacade {
	return &StorefrontFacade{
		customers: customers,
		sessions:  sessions,
		issuer:    issuer,
		tokens:    tokens,
		logger:    logger,
	}
}

func sessionStoreError(err error) error {
	return fmt.Errorf("%w: session store: %w", domainErrors.ErrStoreUnavailable, err)
}

// ResolveSession loads the session named by the cookie token. Anonymous
// sessions are kept only in the signed cookie until login persists them,
// so a valid token without a stored entry resolves to an unbound session
// under the same identifier. A missing, forged or expired token yields a
// new identifier; created reports that case.
func (f *StorefrontFacade) ResolveSession(ctx context.Context, token string) (sess model.Session, created bool, err error) {
	if token != "" {
		if id, parseErr := f.tokens.ParseToken(token); parseErr == nil {
			stored, getErr := f.sessions.Get(ctx, id)
			switch {
			case getErr == nil && !f.issuer.Expired(*stored):
				return *stored, false, nil
			case errors.Is(getErr, domainErrors.ErrNotFound):
				return model.Session{ID: id}, false, nil
			case getErr != nil && !errors.Is(getErr, domainErrors.ErrInvalidSession):
				return model.Session{}, false, sessionStoreError(getErr)
			}
		}
	}

	fresh, err := f.issuer.New()
	if err != nil {
		return model.Session{}, false, err
	}
	return fresh, true, nil
}

// SessionToken signs the session identifier for the cookie.
func (f *StorefrontFacade) SessionToken(sess model.Session) (string, error) {
	return f.tokens.IssueToken(sess.ID)
}

func (f *StorefrontFacade) Register(ctx context.Context, candidate model.RegistrationCandidate) (model.RegistrationResult, error) {
	return f.customers.Register(ctx, candidate)
}

// Login binds the customer to a session with a rotated identifier and
// drops the previous one.
func (f *StorefrontFacade) Login(ctx context.Context, sess model.Session, username, password string) (model.Session, model.Portal, error) {
	bound, portal, err := f.customers.Login(ctx, sess, username, password)
	if err != nil {
		return sess, portal, err
	}

	rotated, err := f.issuer.New()
	if err != nil {
		return sess, model.Portal{}, err
	}
	rotated.Username = bound.Username
	rotated.TotalQty = bound.TotalQty

	if err := f.sessions.Save(ctx, rotated); err != nil {
		return sess, model.Portal{}, sessionStoreError(err)
	}
	if sess.ID != "" {
		if err := f.sessions.Delete(ctx, sess.ID); err != nil {
			f.logger.Warn("drop pre-login session", slog.String("error", err.Error()))
		}
	}
	return rotated, portal, nil
}

// Logout forgets the stored session. When the delete fails the entry is
// overwritten with an unbound one, so the identity never survives logout.
func (f *StorefrontFacade) Logout(ctx context.Context, sess model.Session) model.Session {
	cleared := f.customers.Logout(sess)
	if sess.ID == "" {
		return cleared
	}

	err := f.sessions.Delete(ctx, sess.ID)
	if err == nil {
		return cleared
	}
	f.logger.Warn("drop session on logout", slog.String("error", err.Error()))
	if err := f.sessions.Save(ctx, model.Session{ID: sess.ID, ExpiresAt: sess.ExpiresAt}); err != nil {
		f.logger.Error("unbind session on logout", slog.String("error", err.Error()))
	}
	return cleared
}

func (f *StorefrontFacade) Portal(ctx context.Context, sess model.Session) (model.Portal, error) {
	return f.customers.ViewPortal(ctx, sess)
}

func (f *StorefrontFacade) ShowAddress(ctx context.Context, sess model.Session, username string) (model.AddressView, error) {
	if err := authorize(sess, username); err != nil {
		return model.AddressView{}, err
	}
	return f.customers.ShowAddress(ctx, username)
}

func (f *StorefrontFacade) UpdateAddress(ctx context.Context, sess model.Session, username, address string) (model.AddressView, error) {
	if err := authorize(sess, username); err != nil {
		return model.AddressView{}, err
	}
	return f.customers.UpdateAddress(ctx, username, address)
}

// authorize allows address access only to the customer bound to the session.
func authorize(sess model.Session, username string) error {
	if !sess.Bound() {
		return domainErrors.ErrInvalidSession
	}
	if sess.Username != username {
		return domainErrors.ErrForbidden
	}
	return nil
}
