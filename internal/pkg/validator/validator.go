// Package validator wraps go-playground/validator with standardized error
// formatting and the custom tags used by tokensend.
//
// Besides the stock tags, it registers:
//
//   - bech32: the field is a well-formed bech32 address (bech32 or bech32m checksum).
package validator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/tokensend/internal/pkg/address"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var (
	validator *gvalidator.Validate
	initOnce  sync.Once
)

// errStringFormat describes a single failed field.
//
// Example: "'Target': value 'x' does not meet the requirements for the 'bech32' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the shared validator instance. Calling it more than once is a no-op.
func Init() {
	initOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("bech32", isBech32)
		validator = v
	})
}

func isBech32(fl gvalidator.FieldLevel) bool {
	return address.IsValid(fl.Field().String())
}

// formatError turns validator field errors into a joined error rooted at ErrValidationFailed.
// Any other error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags. Init is called on first use.
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
