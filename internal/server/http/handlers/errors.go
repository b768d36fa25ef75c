package handlers

import (
	"errors"
	"net/http"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/usecase"
)

const (
	msgBadRequest    = "The request could not be read. Please try again."
	msgFixFields     = "Please correct the highlighted fields."
	msgLoginRequired = "Please log in to continue."
	msgForbidden     = "You can only manage your own address."
	msgNotFound      = "Customer not found."
	msgUnavailable   = "The service is temporarily unavailable. Please try again later."
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrInvalidSession):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		return msgFixFields
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return usecase.MsgInvalidCredentials
	case errors.Is(err, domainErrors.ErrInvalidSession):
		return msgLoginRequired
	case errors.Is(err, domainErrors.ErrForbidden):
		return msgForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return msgNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return usecase.MsgDuplicateIdentity
	default:
		return msgUnavailable
	}
}
