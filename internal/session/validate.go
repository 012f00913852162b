package session

import (
	"time"

	validator "gopkg.in/go-playground/validator.v9"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
)

// MinimumAge is the youngest age at which an account may be registered.
const MinimumAge = 18

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// adult checks that a birth date is at least MinimumAge years in the
	// past at submission time.
	v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		birthDate, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return isAdult(birthDate, time.Now())
	})

	return v
}

// isAdult reports whether someone born on birthDate is at least MinimumAge
// years old at the reference time.
func isAdult(birthDate, now time.Time) bool {
	cutoff := now.AddDate(-MinimumAge, 0, 0)
	return !birthDate.After(cutoff)
}

// credentials is the validated shape of login input.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Profile is the input to Register.
type Profile struct {
	Name        string          `validate:"required"`
	Email       string          `validate:"required,email"`
	Phone       string          `validate:"required"`
	BirthDate   time.Time       `validate:"required,adult"`
	Password    string          `validate:"required,min=6"`
	AccountType api.AccountType `validate:"required,oneof=user business"`
	PhotoURL    string          `validate:"omitempty,url"`
}

// validateCredentials runs client-side format checks before any network
// call is made.
func validateCredentials(email, password string) error {
	err := validate.Struct(credentials{Email: email, Password: password})
	if err == nil {
		return nil
	}
	return validationError(err)
}

// validateProfile runs client-side registration checks before any network
// call is made. Age is checked here as a UX convenience; the server
// enforces it authoritatively.
func validateProfile(p Profile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	return validationError(err)
}

// validationError converts validator output into the project error type.
func validationError(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errors.NewValidationError(err.Error())
	}

	first := fieldErrs[0]
	if first.Tag() == "adult" {
		return errors.NewUnderageError()
	}

	switch first.Tag() {
	case "required":
		return errors.NewValidationError(first.Field() + " is required")
	case "email":
		return errors.NewValidationError("email address is not valid")
	case "min":
		return errors.NewValidationError(first.Field() + " is too short")
	case "oneof":
		return errors.NewValidationError(first.Field() + " must be one of: user, business")
	case "url":
		return errors.NewValidationError(first.Field() + " is not a valid URL")
	default:
		return errors.NewValidationError(first.Field() + " is invalid")
	}
}
