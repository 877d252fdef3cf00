package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for config value failures
var (
	ErrInvalidBool     = errors.New("invalid boolean value")
	ErrInvalidColor    = errors.New("invalid color value")
	ErrInvalidHexDigit = errors.New("invalid hex digit")
	ErrNumericOverflow = errors.New("color index out of range")
	ErrInvalidText     = errors.New("invalid text value")

	// Source errors
	ErrConfigDir  = errors.New("config directory unavailable")
	ErrConfigFile = errors.New("config file unreadable")
	ErrNotARepo   = errors.New("not a git repository")
)

// FieldError represents a config field whose raw value could not be parsed
type FieldError struct {
	Field    string // Config key (e.g., "path_color")
	Value    string // Raw value as supplied
	Expected string // Human description of the accepted forms
	Err      error  // One of the sentinel errors above
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid value %q: %v, expected %s", e.Value, e.Err, e.Expected)
	}
	return fmt.Sprintf("invalid value %q for %s: %v, expected %s",
		e.Value, e.Field, e.Err, e.Expected)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new field error
func NewFieldError(field, value, expected string, err error) error {
	return &FieldError{
		Field:    field,
		Value:    value,
		Expected: expected,
		Err:      err,
	}
}

// WithField returns a copy of a value error attributed to field. Errors
// that are not a *FieldError are wrapped with the field name.
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		cp := *fe
		cp.Field = field
		return &cp
	}
	return fmt.Errorf("%s: %w", field, err)
}

// IsValueError checks if error came from parsing a raw config value
func IsValueError(err error) bool {
	return errors.Is(err, ErrInvalidBool) ||
		errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, ErrInvalidHexDigit) ||
		errors.Is(err, ErrNumericOverflow) ||
		errors.Is(err, ErrInvalidText)
}

// WrapWithContext adds context to an error
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
