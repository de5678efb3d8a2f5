package stringart

// PixLine is a sparse mapping from Point to the tinted color a single string
// contributes to that pixel. Multiple samples landing on the same pixel
// (common when step_size is small and the line is nearly collinear with a
// pixel center) accumulate in the float domain before the final rounding, so
// the per-pixel RGB matches the value that will actually be drawn onto the
// canvas — delta-scores computed from it stay consistent with the rendered
// image.
type PixLine struct {
	pixels map[Point]RGB
}

// RasterizeLine builds a PixLine from a line, color, step size, and alpha.
// step must be > 0 and alpha must be in (0, 1]. The line is walked from its
// lexicographically smaller endpoint, so a line and its reverse produce the
// same PixLine.
func RasterizeLine(line Line, rgb RGB, step, alpha float64) PixLine {
	if line.B.X < line.A.X || (line.B.X == line.A.X && line.B.Y < line.A.Y) {
		line.A, line.B = line.B, line.A
	}
	contribution := rgb.Float().Scale(step * alpha)

	acc := make(map[Point]RGBf)
	it := line.Iter(step)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		p := v.Point()
		acc[p] = acc[p].Add(contribution)
	}

	pixels := make(map[Point]RGB, len(acc))
	for p, c := range acc {
		pixels[p] = c.Round()
	}
	return PixLine{pixels: pixels}
}

// Pixels returns the accumulated point->color map. Callers must not mutate
// the returned map.
func (pl PixLine) Pixels() map[Point]RGB {
	return pl.pixels
}

// Neg returns the pointwise negation of every pixel's color, used to turn an
// add-pixline into the pixline that undoes it during removal scoring.
func (pl PixLine) Neg() PixLine {
	out := make(map[Point]RGB, len(pl.pixels))
	for p, c := range pl.pixels {
		out[p] = c.Neg()
	}
	return PixLine{pixels: out}
}
