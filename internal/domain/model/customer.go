package model

import "time"

// Customer represents a registered storefront account.
type Customer struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Address      string
	CreatedAt    time.Time
}

// RegistrationCandidate carries registration form input before it is persisted.
type RegistrationCandidate struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=72"`
	Address  string `validate:"max=255"`
}

// RegistrationResult is returned to the presentation layer after a registration attempt.
type RegistrationResult struct {
	OK      bool
	Message string
}

// AddressView is the email/address pair shown on the address page.
type AddressView struct {
	Email   string
	Address string
	Message string
}
