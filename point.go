package stringart

import "fmt"

// Point is a pixel coordinate. Unlike Vector, which represents a sub-pixel
// position used during line traversal, Point always indexes an actual pixel
// and is therefore restricted to non-negative integers.
type Point struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// Vector converts a Point to its exact Vector representation.
func (p Point) Vector() Vector {
	return Vector{X: float64(p.X), Y: float64(p.Y)}
}

// String formats a point the way the CLI's log lines render endpoints.
func (p Point) String() string {
	return fmt.Sprintf("(%6d, %6d)", p.X, p.Y)
}
