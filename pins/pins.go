// Package pins generates pin locations on an image canvas. Pin generation is
// an external collaborator per the spec (its contract, not its algorithm, is
// part of the core), but no real third-party library exists for this
// domain-specific concern, so it is implemented here in the teacher's idiom.
package pins

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/apperr"
)

// Arrangement selects how pins are laid out across the canvas.
type Arrangement int

const (
	Perimeter Arrangement = iota
	Grid
	Circle
	Random
)

// String implements fmt.Stringer for log lines and flag help text.
func (a Arrangement) String() string {
	switch a {
	case Perimeter:
		return "perimeter"
	case Grid:
		return "grid"
	case Circle:
		return "circle"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// ParseArrangement parses the CLI's --pin-arrangement enum value.
func ParseArrangement(s string) (Arrangement, error) {
	switch s {
	case "perimeter":
		return Perimeter, nil
	case "grid":
		return Grid, nil
	case "circle":
		return Circle, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("%w: invalid pin arrangement %q", apperr.ErrInvalidArg, s)
	}
}

// MarshalJSON encodes the arrangement as its CLI enum string.
func (a Arrangement) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes the CLI enum string produced by MarshalJSON.
func (a *Arrangement) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseArrangement(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Generate dispatches to the generator for the given arrangement. rng is
// only consulted by Random; other arrangements are deterministic functions
// of their inputs.
func Generate(arrangement Arrangement, desiredCount, width, height uint32, rng *rand.Rand) []stringart.Point {
	switch arrangement {
	case Perimeter:
		return perimeter(desiredCount, width, height)
	case Grid:
		return grid(desiredCount, width, height)
	case Circle:
		return circle(desiredCount, width, height)
	case Random:
		return random(desiredCount, width, height, rng)
	default:
		return nil
	}
}

func fMul(i uint32, f float64) uint32 {
	return uint32(float64(i) * f)
}

// perimeter places pins evenly along the image's edge, splitting the count
// between horizontal and vertical runs in proportion to the image's aspect
// ratio. A desiredCount of 0 is a redesigned edge case: rather than
// returning no pins at all (the original behavior), it returns the four
// corners, since a string-art canvas with zero pins can never produce any
// strings and a caller that asks for "as few as possible" almost certainly
// still wants a usable arrangement.
func perimeter(desiredCount, width, height uint32) []stringart.Point {
	if desiredCount == 0 {
		return []stringart.Point{
			stringart.Pt(0, 0),
			stringart.Pt(width-1, 0),
			stringart.Pt(width-1, height-1),
			stringart.Pt(0, height-1),
		}
	}

	perimeterPixels := (width + height - 2) * 2
	spacing := math.Max(1.0, float64(perimeterPixels)/float64(desiredCount))
	count := float64(perimeterPixels) / spacing
	ratio := float64(width) / float64(height)
	hCountF := count / 2.0 * ratio / (1.0 + ratio)
	vCountF := count/2.0 - hCountF

	hCount := uint32(math.Round(hCountF))
	vCount := uint32(math.Round(vCountF))

	var points []stringart.Point

	if hCount > 0 {
		hSpacing := float64(width) / float64(hCount)
		for i := uint32(0); i < hCount; i++ {
			points = append(points, stringart.Pt(fMul(i, hSpacing), 0))
		}
	}
	if vCount > 0 {
		vSpacing := float64(height) / float64(vCount)
		for i := uint32(0); i < vCount; i++ {
			points = append(points, stringart.Pt(width-1, fMul(i, vSpacing)))
		}
	}
	if hCount > 0 {
		hSpacing := float64(width) / float64(hCount)
		for i := uint32(0); i < hCount; i++ {
			points = append(points, stringart.Pt(width-fMul(i, hSpacing)-1, height-1))
		}
	}
	if vCount > 0 {
		vSpacing := float64(height) / float64(vCount)
		for i := uint32(0); i < vCount; i++ {
			points = append(points, stringart.Pt(0, height-fMul(i, vSpacing)-1))
		}
	}

	return points
}

func grid(desiredCount, width, height uint32) []stringart.Point {
	ratio := float64(width) / float64(height)
	x := minU32(width, uint32(math.Round(math.Sqrt(float64(desiredCount)*ratio))))
	y := minU32(height, uint32(math.Round(math.Sqrt(float64(desiredCount)/ratio))))

	if x == 0 || y == 0 {
		return nil
	}

	dx := float64(width-1) / float64(maxU32(x, 1)-1)
	dy := float64(height-1) / float64(maxU32(y, 1)-1)

	points := make([]stringart.Point, 0, x*y)
	for j := uint32(0); j < y; j++ {
		for i := uint32(0); i < x; i++ {
			points = append(points, stringart.Pt(fMul(i, dx), fMul(j, dy)))
		}
	}
	return points
}

func random(desiredCount, width, height uint32, rng *rand.Rand) []stringart.Point {
	count := minU32(width*height, desiredCount)
	seen := make(map[stringart.Point]bool, count)
	points := make([]stringart.Point, 0, count)
	for uint32(len(points)) < count {
		p := stringart.Pt(uint32(rng.Int63n(int64(width))), uint32(rng.Int63n(int64(height))))
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	return points
}

func circle(desiredCount, width, height uint32) []stringart.Point {
	if desiredCount == 0 {
		return nil
	}
	centerX := float64(width-1) / 2.0
	centerY := float64(height-1) / 2.0
	radius := math.Min(centerX, centerY)
	stepSize := 2.0 * math.Pi / float64(desiredCount)

	var points []stringart.Point
	for step := uint32(0); step < desiredCount; step++ {
		angle := float64(step) * stepSize
		p := stringart.Pt(
			uint32(math.Round(radius*math.Cos(angle))+centerX),
			uint32(math.Round(radius*math.Sin(angle))+centerY),
		)
		already := false
		for _, q := range points {
			if q == p {
				already = true
				break
			}
		}
		if !already {
			points = append(points, p)
		}
	}
	return points
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
