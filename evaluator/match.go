// Package evaluator dispatches over the tagged types in package values.
//
// The functions here are pure: they read only their arguments and may be
// called from any number of goroutines. GuardEngine adds data-driven
// classification backed by CEL expressions.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"github.com/rivo/uniseg"

	"github.com/liamcoop/tagval/values"
)

var (
	// ErrUnknownShape is returned for a nil Shape
	ErrUnknownShape = errors.New("unknown shape")
	// ErrAreaOutOfRange is returned when an area is not representable as a positive finite float64
	ErrAreaOutOfRange = errors.New("area out of range")
)

// ShortTextLimit is the character count at which text stops being short
const ShortTextLimit = 10

// InvalidWeekday is returned by MatchWeekday for day numbers outside 1..7
const InvalidWeekday = "invalid"

var weekdays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ClassifyValue labels a value by variant.
// Text is measured in user-perceived characters: "empty", "short" below
// ShortTextLimit, "long" otherwise. Numbers get "zero" or a sign and parity
// label such as "negative odd". Booleans render as "true" or "false".
func ClassifyValue(v values.Value) string {
	switch v := v.(type) {
	case values.Text:
		switch n := uniseg.GraphemeClusterCount(string(v)); {
		case n == 0:
			return "empty"
		case n < ShortTextLimit:
			return "short"
		default:
			return "long"
		}
	case values.Number:
		if v == 0 {
			return "zero"
		}
		sign := "positive"
		if v < 0 {
			sign = "negative"
		}
		parity := "even"
		if v%2 != 0 {
			parity = "odd"
		}
		return sign + " " + parity
	case values.Boolean:
		return v.String()
	default:
		return "unknown"
	}
}

// ShapeArea computes the area of s.
// Non-positive or non-finite dimensions fail with values.ErrInvalidDimension.
// Dimensions that are valid on their own but whose product underflows to
// zero or overflows to infinity fail with ErrAreaOutOfRange.
func ShapeArea(s values.Shape) (float64, error) {
	if s == nil {
		return 0, ErrUnknownShape
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	var area float64
	switch s := s.(type) {
	case values.Circle:
		area = math.Pi * s.Radius * s.Radius
	case values.Rectangle:
		area = s.Width * s.Height
	case values.Triangle:
		area = 0.5 * s.Base * s.Height
	default:
		return 0, fmt.Errorf("%T: %w", s, ErrUnknownShape)
	}

	if area <= 0 || math.IsInf(area, 0) {
		return 0, fmt.Errorf("%T area %v: %w", s, area, ErrAreaOutOfRange)
	}
	return area, nil
}

// ClassifyNumber places n in one of five inclusive ranges
func ClassifyNumber(n int64) string {
	switch {
	case n < 0:
		return "negative"
	case n == 0:
		return "zero"
	case n <= 9:
		return "single digit"
	case n <= 99:
		return "double digit"
	default:
		return "large"
	}
}

// MatchWeekday maps 1..7 to Monday..Sunday and anything else to InvalidWeekday
func MatchWeekday(day uint) string {
	if day < 1 || day > uint(len(weekdays)) {
		return InvalidWeekday
	}
	return weekdays[day-1]
}

// ClassifyAge buckets an age into a life stage
func ClassifyAge(age uint) string {
	switch {
	case age < 13:
		return "child"
	case age < 18:
		return "teenager"
	case age < 65:
		return "adult"
	default:
		return "senior"
	}
}

// DescribeStatus names a review state; values outside the enum are "Unknown"
func DescribeStatus(s values.Status) string {
	switch s {
	case values.StatusPending:
		return "Pending"
	case values.StatusApproved:
		return "Approved"
	case values.StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// DescribePoint says where p lies relative to the axes
func DescribePoint(p values.Point) string {
	switch {
	case p.X == 0 && p.Y == 0:
		return "origin"
	case p.Y == 0:
		return fmt.Sprintf("on the x axis at x=%d", p.X)
	case p.X == 0:
		return fmt.Sprintf("on the y axis at y=%d", p.Y)
	case p.X == p.Y:
		return fmt.Sprintf("on the diagonal at (%d, %d)", p.X, p.Y)
	default:
		return fmt.Sprintf("at (%d, %d)", p.X, p.Y)
	}
}

// DescribeOptional renders o as "some(<v>)" or "none"
func DescribeOptional[T any](o values.Optional[T]) string {
	return o.String()
}
