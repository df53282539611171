package validation

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a struct against its `validate` tags.
func Struct(i interface{}) error {
	return v.Struct(i)
}
