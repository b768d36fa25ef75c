package dto

import "github.com/polkiloo/storefront/internal/domain/model"

// RegisterRequest describes the registration form.
type RegisterRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Address  string `form:"address" json:"address"`
}

func (r RegisterRequest) Candidate() model.RegistrationCandidate {
	return model.RegistrationCandidate{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
	}
}

// LoginRequest describes the login form.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// AddressRequest describes the address form. Username defaults to the session customer.
type AddressRequest struct {
	Username string `form:"username" json:"username"`
	Address  string `form:"address" json:"address"`
}

// CustomerView is the customer shown back to a page; it never carries the password.
type CustomerView struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}
