package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	Customers map[string]*model.Customer
	Next      int64
	Err       error
	ExistsErr error
	CreateErr error
	UpdateErr error
	Creates   int
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Customers: make(map[string]*model.Customer), Next: 1}
}

// Create stores customer unless username or email is taken.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Customers == nil {
		s.Customers = make(map[string]*model.Customer)
	}
	for _, existing := range s.Customers {
		if existing.Username == customer.Username || existing.Email == customer.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	customer.ID = s.Next
	s.Next++
	s.Creates++
	stored := customer
	s.Customers[customer.Username] = &stored
	return &stored, nil
}

// ExistsByUsernameOrEmail reports whether either identity is taken.
func (s *CustomerRepositoryStub) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	if s.Err != nil {
		return false, s.Err
	}
	for _, existing := range s.Customers {
		if existing.Username == username || existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// GetByUsername returns a copy of the stored customer or not found.
func (s *CustomerRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.Customers[username]; ok {
		out := *customer
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateAddress changes only the address of an existing customer.
func (s *CustomerRepositoryStub) UpdateAddress(ctx context.Context, username, address string) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if s.Err != nil {
		return s.Err
	}
	customer, ok := s.Customers[username]
	if !ok {
		return domainErrors.ErrNotFound
	}
	customer.Address = address
	return nil
}

// ProductRepositoryStub returns a fixed catalog.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// List returns configured products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Products == nil {
		return []model.Product{}, nil
	}
	return s.Products, nil
}

// CartRepositoryStub keeps temporary carts keyed by username.
type CartRepositoryStub struct {
	Items map[string][]model.CartItem
	Err   error
}

// ListByUsername returns cart lines for username.
func (s *CartRepositoryStub) ListByUsername(ctx context.Context, username string) ([]model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items[username], nil
}

// SessionRepositoryStub is a concurrency safe in-memory session store.
type SessionRepositoryStub struct {
	mu        sync.Mutex
	Sessions  map[string]model.Session
	Deleted   []string
	GetErr    error
	SaveErr   error
	DeleteErr error
}

// NewSessionRepositoryStub constructs an empty session store.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]model.Session)}
}

// Get returns stored session or not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	sess, ok := s.Sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &sess, nil
}

// Save overwrites the session value.
func (s *SessionRepositoryStub) Save(ctx context.Context, sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	s.Sessions[sess.ID] = sess
	return nil
}

// Delete removes the session; missing keys are ignored.
func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Sessions, id)
	s.Deleted = append(s.Deleted, id)
	return nil
}

// Snapshot returns the stored session for assertions.
func (s *SessionRepositoryStub) Snapshot(id string) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.Sessions[id]
	return sess, ok
}
