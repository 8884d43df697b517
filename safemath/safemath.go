package safemath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors wrapped by Divide and ParseNumber
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotFinite      = errors.New("result is not a finite number")
	ErrEmptyInput     = errors.New("empty input")
	ErrMalformed      = errors.New("not a base-10 integer")
	ErrOutOfRange     = errors.New("integer out of range")
)

// Divide returns a / b.
// It fails instead of producing an infinity or NaN: b == 0 (either sign)
// yields ErrDivisionByZero, and non-finite operands or an overflowing
// quotient yield ErrNotFinite.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide %v by zero: %w", a, ErrDivisionByZero)
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, fmt.Errorf("cannot divide %v by %v: %w", a, b, ErrNotFinite)
	}

	q := a / b
	if !isFinite(q) {
		return 0, fmt.Errorf("%v / %v overflows: %w", a, b, ErrNotFinite)
	}
	return q, nil
}

// ParseNumber parses s as a base-10 int64 with an optional leading sign.
// Surrounding whitespace is not trimmed and makes the input malformed.
func ParseNumber(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("cannot parse number: %w", ErrEmptyInput)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("cannot parse %q: %w", s, ErrOutOfRange)
		}
		return 0, fmt.Errorf("cannot parse %q: %w", s, ErrMalformed)
	}
	return n, nil
}

// divide is swapped in tests to observe whether division was attempted
var divide = Divide

// SafeDivideAndParse parses both operands and divides them.
// The first failure from either step is returned as is.
func SafeDivideAndParse(a, b string) (float64, error) {
	x, err := ParseNumber(a)
	if err != nil {
		return 0, err
	}

	y, err := ParseNumber(b)
	if err != nil {
		return 0, err
	}

	return divide(float64(x), float64(y))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
