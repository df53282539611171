package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Describe flattens a validator error into one human-readable line, suitable
// for CLI output: "smtphost: required; smtpport: lte".
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
