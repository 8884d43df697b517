package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamcoop/tagval/values"
)

// TestClassifyValue verifies the label chosen for each variant
func TestClassifyValue(t *testing.T) {
	tests := []struct {
		name  string
		value values.Value
		want  string
	}{
		{"empty text", values.Text(""), "empty"},
		{"one char", values.Text("a"), "short"},
		{"nine chars", values.Text("abcdefghi"), "short"},
		{"ten chars", values.Text("abcdefghij"), "long"},
		{"accented counts per character", values.Text("héllo wörl"), "long"},
		{"family emoji is one character", values.Text("👨‍👩‍👧‍👦"), "short"},
		{"zero", values.Number(0), "zero"},
		{"positive even", values.Number(42), "positive even"},
		{"positive odd", values.Number(7), "positive odd"},
		{"negative even", values.Number(-10), "negative even"},
		{"negative odd", values.Number(-3), "negative odd"},
		{"min int is even", values.Number(math.MinInt64), "negative even"},
		{"true", values.Boolean(true), "true"},
		{"false", values.Boolean(false), "false"},
		{"nil", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyValue(tt.value))
		})
	}
}

// TestShapeArea verifies the area formula for each variant
func TestShapeArea(t *testing.T) {
	tests := []struct {
		name  string
		shape values.Shape
		want  float64
	}{
		{"rectangle", values.Rectangle{Width: 3, Height: 4}, 12.0},
		{"circle", values.Circle{Radius: 2}, 12.566370614359172},
		{"circle radius 5", values.Circle{Radius: 5}, 78.53981633974483},
		{"triangle", values.Triangle{Base: 3, Height: 4}, 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShapeArea(tt.shape)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestShapeAreaRejectsBadDimensions verifies degenerate shapes fail instead of returning an area
func TestShapeAreaRejectsBadDimensions(t *testing.T) {
	bad := []values.Shape{
		values.Circle{Radius: 0},
		values.Circle{Radius: -2},
		values.Rectangle{Width: 3, Height: 0},
		values.Rectangle{Width: -3, Height: 4},
		values.Triangle{Base: 3, Height: math.NaN()},
		values.Triangle{Base: math.Inf(1), Height: 1},
	}

	for _, s := range bad {
		area, err := ShapeArea(s)
		assert.ErrorIs(t, err, values.ErrInvalidDimension, "%#v", s)
		assert.Zero(t, area)
	}

	tooExtreme := []values.Shape{
		values.Triangle{Base: 1e-200, Height: 1e-200},
		values.Circle{Radius: 1e-170},
		values.Rectangle{Width: 1e200, Height: 1e200},
		values.Circle{Radius: 1e155},
	}

	for _, s := range tooExtreme {
		area, err := ShapeArea(s)
		assert.ErrorIs(t, err, ErrAreaOutOfRange, "%#v", s)
		assert.NotErrorIs(t, err, values.ErrInvalidDimension, "%#v", s)
		assert.Zero(t, area)
	}

	_, err := ShapeArea(nil)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

// TestClassifyNumberBoundaries verifies each inclusive range edge
func TestClassifyNumberBoundaries(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{math.MinInt64, "negative"},
		{-1, "negative"},
		{0, "zero"},
		{1, "single digit"},
		{9, "single digit"},
		{10, "double digit"},
		{99, "double digit"},
		{100, "large"},
		{math.MaxInt64, "large"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyNumber(tt.n), "ClassifyNumber(%d)", tt.n)
	}
}

// TestMatchWeekday verifies the fixed day order and the invalid marker
func TestMatchWeekday(t *testing.T) {
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, day := range want {
		assert.Equal(t, day, MatchWeekday(uint(i+1)))
	}

	for _, day := range []uint{0, 8, 100, math.MaxUint} {
		got := MatchWeekday(day)
		assert.Equal(t, InvalidWeekday, got, "day %d", day)
		assert.NotContains(t, want, got)
	}
}

// TestClassifyAge verifies each age bracket edge
func TestClassifyAge(t *testing.T) {
	tests := []struct {
		age  uint
		want string
	}{
		{0, "child"},
		{12, "child"},
		{13, "teenager"},
		{17, "teenager"},
		{18, "adult"},
		{64, "adult"},
		{65, "senior"},
		{150, "senior"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAge(tt.age), "ClassifyAge(%d)", tt.age)
	}
}

// TestDescribeStatus verifies every status has its own description
func TestDescribeStatus(t *testing.T) {
	assert.Equal(t, "Pending", DescribeStatus(values.StatusPending))
	assert.Equal(t, "Approved", DescribeStatus(values.StatusApproved))
	assert.Equal(t, "Rejected", DescribeStatus(values.StatusRejected))
	assert.Equal(t, "Unknown", DescribeStatus(values.Status(99)))
}

// TestDescribePoint verifies destructuring picks the most specific position
func TestDescribePoint(t *testing.T) {
	tests := []struct {
		p    values.Point
		want string
	}{
		{values.Point{}, "origin"},
		{values.Point{X: 3}, "on the x axis at x=3"},
		{values.Point{Y: -2}, "on the y axis at y=-2"},
		{values.Point{X: 4, Y: 4}, "on the diagonal at (4, 4)"},
		{values.Point{X: 1, Y: 2}, "at (1, 2)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribePoint(tt.p))
	}
}

// TestDescribeOptional verifies present and absent values render distinctly
func TestDescribeOptional(t *testing.T) {
	assert.Equal(t, "some(42)", DescribeOptional(values.Some(42)))
	assert.Equal(t, "none", DescribeOptional(values.None[string]()))
}
