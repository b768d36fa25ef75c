package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// StorefrontFacadeStub provides controllable behaviour for HTTP layer tests.
type StorefrontFacadeStub struct {
	ResolveFn       func(context.Context, string) (model.Session, bool, error)
	TokenFn         func(model.Session) (string, error)
	RegisterFn      func(context.Context, model.RegistrationCandidate) (model.RegistrationResult, error)
	LoginFn         func(context.Context, model.Session, string, string) (model.Session, model.Portal, error)
	LogoutFn        func(context.Context, model.Session) model.Session
	PortalFn        func(context.Context, model.Session) (model.Portal, error)
	ShowAddressFn   func(context.Context, model.Session, string) (model.AddressView, error)
	UpdateAddressFn func(context.Context, model.Session, string, string) (model.AddressView, error)

	mu       sync.Mutex
	Resolved []string
}

// ResolveSession records the token and returns a fixed anonymous session by default.
func (s *StorefrontFacadeStub) ResolveSession(ctx context.Context, token string) (model.Session, bool, error) {
	s.mu.Lock()
	s.Resolved = append(s.Resolved, token)
	s.mu.Unlock()
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return model.Session{ID: "sid"}, token == "", nil
}

// SessionToken signs with a readable prefix.
func (s *StorefrontFacadeStub) SessionToken(sess model.Session) (string, error) {
	if s.TokenFn != nil {
		return s.TokenFn(sess)
	}
	return "signed:" + sess.ID, nil
}

// Register returns a successful result unless overridden.
func (s *StorefrontFacadeStub) Register(ctx context.Context, candidate model.RegistrationCandidate) (model.RegistrationResult, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, candidate)
	}
	return model.RegistrationResult{OK: true, Message: "registered"}, nil
}

// Login binds the given username unless overridden.
func (s *StorefrontFacadeStub) Login(ctx context.Context, sess model.Session, username, password string) (model.Session, model.Portal, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, sess, username, password)
	}
	bound := model.Session{ID: "bound", Username: username}
	return bound, model.Portal{Username: username, Products: []model.Product{}}, nil
}

// Logout returns an empty session unless overridden.
func (s *StorefrontFacadeStub) Logout(ctx context.Context, sess model.Session) model.Session {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, sess)
	}
	return model.Session{}
}

// Portal echoes the session quantity with an empty catalog.
func (s *StorefrontFacadeStub) Portal(ctx context.Context, sess model.Session) (model.Portal, error) {
	if s.PortalFn != nil {
		return s.PortalFn(ctx, sess)
	}
	return model.Portal{Username: sess.Username, Products: []model.Product{}, TotalQty: sess.TotalQty}, nil
}

// ShowAddress returns a fixed view unless overridden.
func (s *StorefrontFacadeStub) ShowAddress(ctx context.Context, sess model.Session, username string) (model.AddressView, error) {
	if s.ShowAddressFn != nil {
		return s.ShowAddressFn(ctx, sess, username)
	}
	return model.AddressView{Email: username + "@x.com", Address: "1 Main St"}, nil
}

// UpdateAddress echoes the new address unless overridden.
func (s *StorefrontFacadeStub) UpdateAddress(ctx context.Context, sess model.Session, username, address string) (model.AddressView, error) {
	if s.UpdateAddressFn != nil {
		return s.UpdateAddressFn(ctx, sess, username, address)
	}
	return model.AddressView{Email: username + "@x.com", Address: address, Message: "updated"}, nil
}
