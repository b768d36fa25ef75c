package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
// Create must reject duplicate usernames or emails with ErrAlreadyExists.
type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) (*model.Customer, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*model.Customer, error)
	UpdateAddress(ctx context.Context, username, address string) error
}
