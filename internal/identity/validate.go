package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matheus3301/wchat/internal/errs"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 6

var validate = validator.New()

// RegisterInput is a registration form.
type RegisterInput struct {
	Name            string `validate:"required,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6,max=72"`
	ConfirmPassword string `validate:"omitempty,eqfield=Password"`
}

// SignInInput is a sign-in form.
type SignInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// ValidateRegister checks a registration form.
func ValidateRegister(in RegisterInput) error {
	return check(in)
}

// ValidateSignIn checks a sign-in form.
func ValidateSignIn(in SignInInput) error {
	return check(in)
}

// check wraps every field problem in errs.ErrInvalidArgument with one
// readable message per field.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field == "ConfirmPassword" {
		return "passwords do not match"
	}
	field = strings.ToLower(field)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " is invalid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
