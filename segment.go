package stringart

// LineSegment is one accepted string: an endpoint pair plus the color it was
// drawn in. In the optimizer's own segment list, Color is background-shifted
// (the value it was scored against internally); the driver rebiases each
// segment by adding the background back in before it's returned to the
// caller, so only post-rebias segments carry absolute palette colors.
type LineSegment struct {
	A, B  Point
	Color RGB
}

// Line returns the geometric line between the segment's endpoints.
func (s LineSegment) Line() Line {
	return NewLine(s.A, s.B)
}
