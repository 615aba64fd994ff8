package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("record not found")

// ValidationError marks malformed or out-of-range input rejected before the
// database is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// mustBeOneOf validates enum-ish string fields on patches; empty clears.
func mustBeOneOf(field, value string, options ...string) error {
	if value == "" {
		return nil
	}
	for _, o := range options {
		if value == o {
			return nil
		}
	}
	return invalidf("%s must be one of: %s", field, strings.Join(options, ", "))
}

// notFound maps gorm's sentinel onto the store's.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
