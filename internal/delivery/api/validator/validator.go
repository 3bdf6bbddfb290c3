// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request structs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// FieldErrors flattens validation errors into field → rule pairs.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return fields
}
