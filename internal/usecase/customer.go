package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

// Messages shown to the customer after workflow actions.
const (
	MsgRegistered         = "Account has been registered successfully, please log in."
	MsgDuplicateIdentity  = "Username or Email has already exist."
	MsgInvalidCredentials = "Invalid Credential. Please try again."
	MsgAddressUpdated     = "Your address has been updated successfully."
)

// CustomerUseCase drives registration, login and address management.
// It keeps no per-client state; sessions travel in and out as values.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	carts     repository.CartRepository
	hasher    pkgAuth.PasswordHasher
	validator *Validator
	logger    *slog.Logger
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	hasher pkgAuth.PasswordHasher,
	validator *Validator,
	logger *slog.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customers: customers,
		products:  products,
		carts:     carts,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", domainErrors.ErrStoreUnavailable, err)
}

// Register validates the candidate and creates the account once.
func (u *CustomerUseCase) Register(ctx context.Context, candidate model.RegistrationCandidate) (model.RegistrationResult, error) {
	candidate.Username = strings.TrimSpace(candidate.Username)
	candidate.Email = strings.TrimSpace(candidate.Email)

	if err := u.validator.Struct(candidate); err != nil {
		return model.RegistrationResult{}, err
	}

	exists, err := u.customers.ExistsByUsernameOrEmail(ctx, candidate.Username, candidate.Email)
	if err != nil {
		return model.RegistrationResult{}, storeUnavailable(err)
	}
	if exists {
		return model.RegistrationResult{Message: MsgDuplicateIdentity}, domainErrors.ErrAlreadyExists
	}

	hash, err := u.hasher.Hash(candidate.Password)
	if err != nil {
		return model.RegistrationResult{}, err
	}

	created, err := u.customers.Create(ctx, model.Customer{
		Username:     candidate.Username,
		Email:        candidate.Email,
		PasswordHash: hash,
		Address:      candidate.Address,
	})
	if err != nil {
		// the pre-check can lose a race; the UNIQUE constraint still decides
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return model.RegistrationResult{Message: MsgDuplicateIdentity}, domainErrors.ErrAlreadyExists
		}
		return model.RegistrationResult{}, storeUnavailable(err)
	}

	u.logger.Info("customer registered", slog.String("username", created.Username), slog.Int64("id", created.ID))
	return model.RegistrationResult{OK: true, Message: MsgRegistered}, nil
}

// Login binds the session to the customer when the password matches and
// recomputes the cart quantity from the stored temporary cart.
func (u *CustomerUseCase) Login(ctx context.Context, sess model.Session, username, password string) (model.Session, model.Portal, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return sess, model.Portal{}, domainErrors.ErrInvalidCredentials
	}

	customer, err := u.customers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return sess, model.Portal{}, domainErrors.ErrInvalidCredentials
		}
		return sess, model.Portal{}, storeUnavailable(err)
	}
	if err := u.hasher.Compare(customer.PasswordHash, password); err != nil {
		return sess, model.Portal{}, domainErrors.ErrInvalidCredentials
	}

	cart, err := u.carts.ListByUsername(ctx, customer.Username)
	if err != nil {
		return sess, model.Portal{}, storeUnavailable(err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return sess, model.Portal{}, storeUnavailable(err)
	}

	total := 0
	for _, item := range cart {
		total += item.Quantity
	}

	bound := sess
	bound.Username = customer.Username
	bound.TotalQty = total

	u.logger.Info("customer logged in", slog.String("username", customer.Username), slog.Int("total_qty", total))
	return bound, model.Portal{
		Username: customer.Username,
		Cart:     cart,
		Products: products,
		TotalQty: total,
	}, nil
}

// Logout discards every attribute of the session.
func (u *CustomerUseCase) Logout(sess model.Session) model.Session {
	if sess.Bound() {
		u.logger.Info("customer logged out", slog.String("username", sess.Username))
	}
	return model.Session{}
}

// ViewPortal lists the catalog with the quantity cached on the session.
func (u *CustomerUseCase) ViewPortal(ctx context.Context, sess model.Session) (model.Portal, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return model.Portal{}, storeUnavailable(err)
	}
	return model.Portal{
		Username: sess.Username,
		Products: products,
		TotalQty: sess.TotalQty,
	}, nil
}

// ShowAddress returns the email and address of the customer.
func (u *CustomerUseCase) ShowAddress(ctx context.Context, username string) (model.AddressView, error) {
	customer, err := u.lookup(ctx, username)
	if err != nil {
		return model.AddressView{}, err
	}
	return model.AddressView{Email: customer.Email, Address: customer.Address}, nil
}

// UpdateAddress replaces only the address column and returns the stored result.
func (u *CustomerUseCase) UpdateAddress(ctx context.Context, username, address string) (model.AddressView, error) {
	if err := u.validator.Var("address", address, addressRule); err != nil {
		return model.AddressView{}, err
	}

	if err := u.customers.UpdateAddress(ctx, username, address); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.AddressView{}, domainErrors.ErrNotFound
		}
		return model.AddressView{}, storeUnavailable(err)
	}

	customer, err := u.lookup(ctx, username)
	if err != nil {
		return model.AddressView{}, err
	}

	u.logger.Info("customer address updated", slog.String("username", username))
	return model.AddressView{Email: customer.Email, Address: customer.Address, Message: MsgAddressUpdated}, nil
}

func (u *CustomerUseCase) lookup(ctx context.Context, username string) (*model.Customer, error) {
	customer, err := u.customers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, storeUnavailable(err)
	}
	return customer, nil
}
