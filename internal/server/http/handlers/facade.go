package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// CustomerFacade describes the customer workflow exposed to handlers.
type CustomerFacade interface {
	Register(ctx context.Context, candidate model.RegistrationCandidate) (model.RegistrationResult, error)
	Login(ctx context.Context, sess model.Session, username, password string) (model.Session, model.Portal, error)
	Logout(ctx context.Context, sess model.Session) model.Session
	Portal(ctx context.Context, sess model.Session) (model.Portal, error)
	ShowAddress(ctx context.Context, sess model.Session, username string) (model.AddressView, error)
	UpdateAddress(ctx context.Context, sess model.Session, username, address string) (model.AddressView, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers and middleware.
type StorefrontFacade interface {
	middleware.SessionResolver
	CustomerFacade
}
