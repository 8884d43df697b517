package values

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned when a shape dimension is not a positive finite number
var ErrInvalidDimension = errors.New("shape dimension must be a positive finite number")

// Shape is a closed sum type over Circle, Rectangle and Triangle.
// Dimensions are not enforced by the type; use the constructors or
// Validate before trusting a Shape.
type Shape interface {
	// Validate reports the first dimension that is not positive and finite
	Validate() error
	isShape()
}

// Circle is a disc with the given radius
type Circle struct {
	Radius float64
}

// Rectangle is an axis-aligned rectangle
type Rectangle struct {
	Width  float64
	Height float64
}

// Triangle is described by its base and perpendicular height
type Triangle struct {
	Base   float64
	Height float64
}

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Triangle) isShape()  {}

// Validate rejects a radius that is not positive and finite
func (c Circle) Validate() error {
	return checkDimension("circle", "radius", c.Radius)
}

// Validate checks width and then height
func (r Rectangle) Validate() error {
	if err := checkDimension("rectangle", "width", r.Width); err != nil {
		return err
	}
	return checkDimension("rectangle", "height", r.Height)
}

// Validate checks base and then height
func (t Triangle) Validate() error {
	if err := checkDimension("triangle", "base", t.Base); err != nil {
		return err
	}
	return checkDimension("triangle", "height", t.Height)
}

// NewCircle returns a Circle or an error wrapping ErrInvalidDimension
func NewCircle(radius float64) (Circle, error) {
	c := Circle{Radius: radius}
	if err := c.Validate(); err != nil {
		return Circle{}, err
	}
	return c, nil
}

// NewRectangle returns a Rectangle or an error wrapping ErrInvalidDimension
func NewRectangle(width, height float64) (Rectangle, error) {
	r := Rectangle{Width: width, Height: height}
	if err := r.Validate(); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

// NewTriangle returns a Triangle or an error wrapping ErrInvalidDimension
func NewTriangle(base, height float64) (Triangle, error) {
	t := Triangle{Base: base, Height: height}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

func checkDimension(shape, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s %s %v: %w", shape, field, v, ErrInvalidDimension)
	}
	return nil
}
