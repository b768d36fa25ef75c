package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
)

const addressRule = "max=255"

// Validator turns struct tag violations into domain validation errors.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates s against its `validate` tags.
func (v *Validator) Struct(s any) error {
	return v.translate("", v.validate.Struct(s))
}

// Var validates a single value under the given field name.
func (v *Validator) Var(field string, value any, rule string) error {
	return v.translate(field, v.validate.Var(value, rule))
}

func (v *Validator) translate(field string, err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	out := &domainErrors.ValidationError{Fields: make([]domainErrors.FieldError, 0, len(errs))}
	for _, fe := range errs {
		name := field
		if name == "" {
			name = strings.ToLower(fe.Field())
		}
		out.Fields = append(out.Fields, domainErrors.FieldError{
			Field:   name,
			Rule:    fe.Tag(),
			Message: fieldMessage(name, fe),
		})
	}
	return out
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
