package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ProductRepository provides read access to the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
}

// CartRepository provides read access to temporary carts.
type CartRepository interface {
	ListByUsername(ctx context.Context, username string) ([]model.CartItem, error)
}

// SessionRepository stores sessions keyed by their identifier.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, id string) error
}
