package fcm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOption is returned by a builder setter when the value violates
	// the constraint of its field. The builder is left unchanged.
	ErrInvalidOption = errors.New("invalid fcm option")

	// ErrDecodeFile is returned when an options file cannot be decoded.
	ErrDecodeFile = errors.New("failed to decode fcm options file")

	// ErrLoadConfig is returned when the options cannot be read from the environment.
	ErrLoadConfig = errors.New("failed to load fcm options config")
)

// InvalidOptionError carries the rejected option, its value and the reason.
// It matches ErrInvalidOption with errors.Is and exposes the underlying
// validator.ValidationErrors through errors.As.
type InvalidOptionError struct {
	Option string
	Value  any
	Reason string
	cause  error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: %s, current value is: %v", ErrInvalidOption, e.Reason, e.Value)
}

func (e *InvalidOptionError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidOption}
	}
	return []error{ErrInvalidOption, e.cause}
}

func newInvalidOptionError(option string, value any, reason string, cause error) *InvalidOptionError {
	return &InvalidOptionError{
		Option: option,
		Value:  value,
		Reason: reason,
		cause:  cause,
	}
}

// IsInvalidOption reports whether err was caused by a rejected option value.
func IsInvalidOption(err error) bool {
	return errors.Is(err, ErrInvalidOption)
}
