package stringart

import (
	"image"
	"image/color"
)

// RefImage is a 2D signed color buffer. Per-channel values may exceed
// [0, 255] and may go negative while strings are being added and removed;
// only the final render step clamps. This is deliberate: clamping inside
// Add/Sub would silently break the optimizer's delta-score identity (see
// Score and ScoreChangeOnAdd below) and therefore its hill-climb
// convergence.
//
// Background normalization. The optimizer never works against the raw
// target image directly. Instead the driver constructs the working
// RefImage as (-target) + background, and feeds the optimizer string colors
// that have already had background subtracted out. With that shift in
// place, minimizing Score(workingImage + sum of strings) is exactly
// minimizing the squared error between the rendered composition (background
// plus tinted strings) and the target. This is the least intuitive part of
// the design and the single most important invariant to preserve.
type RefImage struct {
	width, height int
	pixels        []RGB // row-major, width*height
}

// NewRefImage returns an all-zero (Black) buffer of the given size.
func NewRefImage(width, height int) *RefImage {
	return &RefImage{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}
}

// FromImage copies a decoded target image's channels into a new signed
// RefImage at matching coordinates.
func FromImage(img image.Image) *RefImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	ref := NewRefImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			ref.Set(x, y, RGB{R: int32(r >> 8), G: int32(g >> 8), B: int32(b >> 8)})
		}
	}
	return ref
}

// Width returns the buffer's width. Immutable after construction.
func (r *RefImage) Width() int { return r.width }

// Height returns the buffer's height. Immutable after construction.
func (r *RefImage) Height() int { return r.height }

func (r *RefImage) index(x, y int) int { return y*r.width + x }

// At returns the current signed value at (x, y).
func (r *RefImage) At(x, y int) RGB {
	return r.pixels[r.index(x, y)]
}

// Set overwrites the signed value at (x, y).
func (r *RefImage) Set(x, y int, c RGB) {
	r.pixels[r.index(x, y)] = c
}

// Negated returns a copy with every channel's sign flipped.
func (r *RefImage) Negated() *RefImage {
	out := NewRefImage(r.width, r.height)
	for i, c := range r.pixels {
		out.pixels[i] = c.Neg()
	}
	return out
}

// AddRGB offsets every pixel by c (saturating), used to re-bias a negated
// target image by the chosen background color.
func (r *RefImage) AddRGB(c RGB) *RefImage {
	out := NewRefImage(r.width, r.height)
	for i, v := range r.pixels {
		out.pixels[i] = v.Add(c)
	}
	return out
}

// Add composes a PixLine onto the buffer in place (self += pixline).
func (r *RefImage) Add(pl PixLine) {
	for p, c := range pl.Pixels() {
		i := r.index(int(p.X), int(p.Y))
		r.pixels[i] = r.pixels[i].Add(c)
	}
}

// Sub removes a PixLine from the buffer in place (self -= pixline).
func (r *RefImage) Sub(pl PixLine) {
	for p, c := range pl.Pixels() {
		i := r.index(int(p.X), int(p.Y))
		r.pixels[i] = r.pixels[i].Sub(c)
	}
}

func scorePixel(c RGB) int64 {
	r, g, b := int64(c.R), int64(c.G), int64(c.B)
	return r*r + g*g + b*b
}

// Score returns Σ(r²+g²+b²) over all pixels using the buffer's current
// signed values — the squared-L2 distance from Black.
func (r *RefImage) Score() int64 {
	var total int64
	for _, c := range r.pixels {
		total += scorePixel(c)
	}
	return total
}

// ScoreChangeOnAdd returns the exact change in Score that would result from
// Add(pl), without mutating the buffer:
//
//	Σ over (p, c) in pl [ scorePixel(self[p]+c) - scorePixel(self[p]) ]
//
// This equals Score(R+pl) - Score(R) because every pixel outside pl's
// support is unchanged and therefore cancels in the difference.
func (r *RefImage) ScoreChangeOnAdd(pl PixLine) int64 {
	var delta int64
	for p, c := range pl.Pixels() {
		i := r.index(int(p.X), int(p.Y))
		before := r.pixels[i]
		after := before.Add(c)
		delta += scorePixel(after) - scorePixel(before)
	}
	return delta
}

// ScoreChangeOnSub returns the exact change in Score that would result from
// Sub(pl), computed as ScoreChangeOnAdd(pl.Neg()).
func (r *RefImage) ScoreChangeOnSub(pl PixLine) int64 {
	return r.ScoreChangeOnAdd(pl.Neg())
}

// Color renders the buffer to an 8-bit RGBA image, clamping each channel
// into [0, 255] with alpha fixed at 255.
func (r *RefImage) Color() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.At(x, y)
			red, green, blue := c.Clamp()
			out.SetRGBA(x, y, color.RGBA{R: red, G: green, B: blue, A: 255})
		}
	}
	return out
}
