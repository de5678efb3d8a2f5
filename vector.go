package stringart

import "math"

// Vector is a float 2D displacement or sub-pixel position, used while
// traversing a line. Unlike Point, a Vector is not bounds-checked against
// any canvas.
type Vector struct {
	X, Y float64
}

// Vec is a convenience constructor for Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the vector sum.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector difference.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Basis returns the unit vector in the same direction. The zero vector's
// basis is the zero vector, matching the degenerate single-point line case
// (endpoints identical) where no direction is well defined but the line
// iterator must still yield exactly one sample.
func (v Vector) Basis() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return v.Div(length)
}

// Point rounds the vector to the nearest pixel coordinate. Rounding is
// round-to-nearest; a vector that rounds below zero on either axis clamps to
// 0 rather than wrapping, since Point coordinates are unsigned.
func (v Vector) Point() Point {
	return Pt(roundToUint32(v.X), roundToUint32(v.Y))
}

func roundToUint32(f float64) uint32 {
	r := math.Round(f)
	if r < 0 {
		return 0
	}
	return uint32(r)
}

// Line is an unordered pair of vectors. RasterizeLine treats endpoints A and
// B as interchangeable (pair symmetry); Iter walks from A toward B.
type Line struct {
	A, B Vector
}

// NewLine builds a Line from two points.
func NewLine(a, b Point) Line {
	return Line{A: a.Vector(), B: b.Vector()}
}

// Iter returns a LineIterator over this line at the given step size. step
// must be > 0.
func (l Line) Iter(step float64) *LineIterator {
	delta := l.B.Sub(l.A)
	return &LineIterator{
		current:  l.A,
		step:     delta.Basis().Mul(step),
		stepSize: step,
		distance: delta.Length(),
	}
}

// LineIterator yields A, A+u·s, A+2u·s, ... while the remaining distance is
// >= 0, where u is the unit vector from A to B. It is finite, restartable
// (via Line.Iter), and deterministic.
type LineIterator struct {
	current  Vector
	step     Vector
	stepSize float64
	distance float64
}

// Next returns the next sample and true, or the zero Vector and false once
// the iterator is exhausted.
func (it *LineIterator) Next() (Vector, bool) {
	if it.distance < 0 {
		return Vector{}, false
	}
	v := it.current
	it.current = it.current.Add(it.step)
	it.distance -= it.stepSize
	return v, true
}

// Samples drains the iterator into a slice. Mostly useful in tests; the
// rasterizer itself drives Next directly to avoid the allocation.
func (l Line) Samples(step float64) []Vector {
	it := l.Iter(step)
	var out []Vector
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
