package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation wraps every input validation failure.
var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func validateStruct(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// FormatValidationErrors renders err as "field: message" lines. Errors that
// did not come from validation are rendered as a single line.
func FormatValidationErrors(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		lines = append(lines, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return lines
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_with":
		return "can't be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "alphanum":
		return "must only contain letters and digits"
	default:
		return fmt.Sprintf("is invalid (%s)", fe.Tag())
	}
}
