package stringart

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gogpu/stringart/apperr"
)

// RGB is a signed per-channel color triple wide enough to hold accumulated
// sums from many composited strings without overflowing. Arithmetic
// saturates at the int32 bounds; only the final render step clamps channels
// into [0, 255].
type RGB struct {
	R, G, B int32
}

// Black and White are the two named color constants from the data model.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Add returns the saturating sum of two colors.
func (c RGB) Add(o RGB) RGB {
	return RGB{
		R: saturatingAdd(c.R, o.R),
		G: saturatingAdd(c.G, o.G),
		B: saturatingAdd(c.B, o.B),
	}
}

// Sub returns the saturating difference of two colors.
func (c RGB) Sub(o RGB) RGB {
	return c.Add(o.Neg())
}

// Neg returns the saturating negation of a color.
func (c RGB) Neg() RGB {
	return RGB{
		R: saturatingNeg(c.R),
		G: saturatingNeg(c.G),
		B: saturatingNeg(c.B),
	}
}

func saturatingAdd(a, b int32) int32 {
	sum := int64(a) + int64(b)
	return clampInt32(sum)
}

func saturatingNeg(a int32) int32 {
	if a == math.MinInt32 {
		return math.MaxInt32
	}
	return -a
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// clampByte restricts a channel value into [0, 255] for byte output.
func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Clamp renders the color as its clamped 8-bit representation.
func (c RGB) Clamp() (r, g, b uint8) {
	return clampByte(c.R), clampByte(c.G), clampByte(c.B)
}

// Float converts to the float intermediate representation used by the
// rasterizer.
func (c RGB) Float() RGBf {
	return RGBf{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Hex formats the color's clamped representation as "#RRGGBB" (uppercase),
// matching the CLI's own hex literal grammar.
func (c RGB) Hex() string {
	r, g, b := c.Clamp()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// String implements fmt.Stringer with the hex form, used by log lines.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses exactly the literal form "#RRGGBB": seven characters, a
// leading '#', and six hex digits (upper or lower case). Any other shape is
// rejected with ErrInvalidHex.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q is not of the form #RRGGBB", apperr.ErrInvalidHex, s)
	}
	r, ok1 := hexByte(s[1], s[2])
	g, ok2 := hexByte(s[3], s[4])
	b, ok3 := hexByte(s[5], s[6])
	if !ok1 || !ok2 || !ok3 {
		return RGB{}, fmt.Errorf("%w: %q contains a non-hex digit", apperr.ErrInvalidHex, s)
	}
	return RGB{R: int32(r), G: int32(g), B: int32(b)}, nil
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}

// MarshalJSON encodes the color in its clamped "#RRGGBB" form, so the Data
// JSON record's colors read the same hex grammar the CLI flags accept.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON parses the "#RRGGBB" form produced by MarshalJSON.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// RGBf is the float intermediate color used only inside the pixel-line
// rasterizer to accumulate sub-unit contributions before rounding back to
// RGB.
type RGBf struct {
	R, G, B float64
}

// Scale multiplies every channel by a scalar.
func (c RGBf) Scale(f float64) RGBf {
	return RGBf{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Add returns the sum of two float colors.
func (c RGBf) Add(o RGBf) RGBf {
	return RGBf{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Round rounds each channel to the nearest integer, producing an RGB.
func (c RGBf) Round() RGB {
	return RGB{
		R: int32(math.Round(c.R)),
		G: int32(math.Round(c.G)),
		B: int32(math.Round(c.B)),
	}
}
