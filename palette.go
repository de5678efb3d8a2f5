package stringart

import (
	"image"
	"math"
	"sort"
)

// AutoColor configures automatic palette selection.
type AutoColor struct {
	// AutoFgCount is the number of foreground colors to pick automatically
	// from the target image's histogram.
	AutoFgCount int
	// ManualForegrounds are appended after the automatically picked colors
	// and are always excluded from automatic background selection.
	ManualForegrounds []RGB
	// ManualBackground, if set, is used verbatim instead of the
	// automatically ranked background.
	ManualBackground *RGB
}

const contrastBoost = 1500.0

// boostContrast pushes a channel value away from the midpoint, collapsing
// near-identical tones onto fewer distinct colors so the histogram below has
// a tractable number of buckets. This mirrors the image crate's
// adjust_contrast: the contrast percent is squared before it scales the
// normalized distance from the midpoint, so a boost of 1500 (percent=256)
// saturates almost everything but a ~1-level window around mid-gray.
func boostContrast(v uint8) uint8 {
	percent := math.Pow((100.0+contrastBoost)/100.0, 2)
	c := float64(v) / 255.0
	boosted := ((c-0.5)*percent + 0.5) * 255.0
	if boosted < 0 {
		boosted = 0
	}
	if boosted > 255 {
		boosted = 255
	}
	return uint8(math.Round(boosted))
}

func boostedRGB(img image.Image, x, y int) RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return RGB{
		R: int32(boostContrast(uint8(r >> 8))),
		G: int32(boostContrast(uint8(g >> 8))),
		B: int32(boostContrast(uint8(b >> 8))),
	}
}

// histogram builds a count-by-color table over the contrast-boosted image.
// The same boosted view is used for both ranking and the pixel walk so the
// two stay consistent, as the spec requires.
func histogram(img image.Image) map[RGB]int {
	bounds := img.Bounds()
	h := make(map[RGB]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			h[boostedRGB(img, x, y)]++
		}
	}
	return h
}

type countedColor struct {
	rgb   RGB
	count int
}

// rankedByCountDesc sorts by count descending, with ties broken by a fixed,
// deterministic key (not map iteration order, which Go randomizes).
func rankedByCountDesc(h map[RGB]int) []countedColor {
	ranked := make([]countedColor, 0, len(h))
	for rgb, count := range h {
		ranked = append(ranked, countedColor{rgb: rgb, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		a, b := ranked[i].rgb, ranked[j].rgb
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return ranked
}

func contains(set []RGB, c RGB) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// FgAndBg chooses foreground and background colors from the target image
// per §4.4: a manual background wins outright; otherwise the highest-count
// histogram entry (excluding manual foregrounds) is the background. The
// foreground list takes the top AutoFgCount histogram entries (excluding
// the background and any manual foreground), then appends the manual
// foregrounds verbatim in their given order.
func FgAndBg(img image.Image, cfg AutoColor) (foregrounds []RGB, background RGB) {
	h := histogram(img)
	ranked := rankedByCountDesc(h)

	if cfg.ManualBackground != nil {
		background = *cfg.ManualBackground
	} else {
		for _, rc := range ranked {
			if !contains(cfg.ManualForegrounds, rc.rgb) {
				background = rc.rgb
				break
			}
		}
	}

	autoPicks := make([]RGB, 0, cfg.AutoFgCount)
	for _, rc := range ranked {
		if len(autoPicks) >= cfg.AutoFgCount {
			break
		}
		if rc.rgb == background || contains(cfg.ManualForegrounds, rc.rgb) {
			continue
		}
		autoPicks = append(autoPicks, rc.rgb)
	}

	foregrounds = append(autoPicks, cfg.ManualForegrounds...)
	return foregrounds, background
}
