// Package validator holds the shared validator instance used for
// service-level struct validation, separate from gin's binding validator.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GetValidator returns the process-wide validator instance.
func GetValidator() *validator.Validate {
	return validate
}
