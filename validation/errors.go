package validation

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ValidationError
type ErrorKind int

const (
	InvalidAge ErrorKind = iota + 1
	InvalidEmail
)

// String returns the human-readable kind used as the error prefix
func (k ErrorKind) String() string {
	switch k {
	case InvalidAge:
		return "invalid age"
	case InvalidEmail:
		return "invalid email"
	default:
		return "invalid input"
	}
}

// Sentinels for errors.Is matching against a ValidationError kind
var (
	ErrInvalidAge   = errors.New("invalid age")
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError is a classified, recoverable rejection of input against a domain rule
type ValidationError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Is lets errors.Is match on kind through the package sentinels
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalidAge:
		return e.Kind == InvalidAge
	case ErrInvalidEmail:
		return e.Kind == InvalidEmail
	}
	return false
}

func invalidAge(format string, args ...any) error {
	return &ValidationError{Kind: InvalidAge, Reason: fmt.Sprintf(format, args...)}
}

func invalidEmail(format string, args ...any) error {
	return &ValidationError{Kind: InvalidEmail, Reason: fmt.Sprintf(format, args...)}
}
