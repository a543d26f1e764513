package domain

import (
	"fmt"
	"strconv"
)

// Pi is the approximation of π used for every circle derivation.
//
// It is deliberately the low-precision 3.14 rather than math.Pi: all published
// results (e.g. area 12.56 for radius 2) are defined against this value.
const Pi = 3.14

// Circle is a value object describing a circle by its radius.
//
// The radius is always strictly positive: the only ways to obtain a Circle are
// NewCircle and WithRadius, and both validate. The zero Circle is not valid.
type Circle struct {
	radius float64
}

// NewCircle validates radius and returns the corresponding Circle.
// A radius that is not strictly greater than zero (including NaN) is rejected
// with KindInvalidRadius.
func NewCircle(radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, &OpError{
			Op:   "circle.new",
			Kind: KindInvalidRadius,
			Err:  fmt.Errorf("radius %s: %w", formatNumber(radius), ErrInvalidRadius),
		}
	}
	return Circle{radius: radius}, nil
}

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns Pi * radius².
func (c Circle) Area() float64 {
	return Pi * (c.radius * c.radius)
}

// Perimeter returns 2 * Pi * radius.
func (c Circle) Perimeter() float64 {
	return 2 * Pi * c.radius
}

// WithRadius returns a new Circle with the given radius.
// The receiver is left unchanged; the new radius goes through the same
// validation as NewCircle.
func (c Circle) WithRadius(radius float64) (Circle, error) {
	return NewCircle(radius)
}

// Measure returns a snapshot of the circle's radius and derived properties.
func (c Circle) Measure() Measurement {
	return Measurement{
		Radius:    c.radius,
		Area:      c.Area(),
		Perimeter: c.Perimeter(),
	}
}

// String renders the circle as Circle(radius=<value>).
func (c Circle) String() string {
	return "Circle(radius=" + formatNumber(c.radius) + ")"
}

// Measurement is a read-only snapshot of a circle's properties.
type Measurement struct {
	Radius    float64 `json:"radius"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

// FormatNumber renders v with the given number of decimals.
// A negative precision yields the shortest representation that round-trips.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatNumber(v float64) string { return FormatNumber(v, -1) }
