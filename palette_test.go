package stringart

import (
	"image"
	"image/color"
	"testing"
)

func fillImage(w, h int, pixels map[[2]int]RGB, fallback RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fallback
			if v, ok := pixels[[2]int{x, y}]; ok {
				c = v
			}
			r, g, b := c.Clamp()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func TestFgAndBgBlackImage(t *testing.T) {
	img := fillImage(2, 2, nil, Black)
	fg, bg := FgAndBg(img, AutoColor{AutoFgCount: 1})
	if len(fg) != 0 {
		t.Errorf("foregrounds = %v, want empty", fg)
	}
	if bg != Black {
		t.Errorf("background = %v, want Black", bg)
	}
}

var blueRGB = RGB{0, 0, 255}

func threeByThree() *image.RGBA {
	// 4 WHITE, 3 BLUE, 2 BLACK.
	pixels := map[[2]int]RGB{
		{0, 0}: White, {1, 0}: White, {2, 0}: White,
		{0, 1}: White, {1, 1}: blueRGB, {2, 1}: blueRGB,
		{0, 2}: blueRGB, {1, 2}: Black, {2, 2}: Black,
	}
	return fillImage(3, 3, pixels, White)
}

func TestFgAndBgAutoCountOne(t *testing.T) {
	fg, bg := FgAndBg(threeByThree(), AutoColor{AutoFgCount: 1})
	assertRGBs(t, fg, []RGB{blueRGB})
	if bg != White {
		t.Errorf("background = %v, want White", bg)
	}
}

func TestFgAndBgAutoCountTwo(t *testing.T) {
	fg, bg := FgAndBg(threeByThree(), AutoColor{AutoFgCount: 2})
	assertRGBs(t, fg, []RGB{blueRGB, Black})
	if bg != White {
		t.Errorf("background = %v, want White", bg)
	}
}

func TestFgAndBgAutoCountSaturates(t *testing.T) {
	fg, bg := FgAndBg(threeByThree(), AutoColor{AutoFgCount: 20})
	assertRGBs(t, fg, []RGB{blueRGB, Black})
	if bg != White {
		t.Errorf("background = %v, want White", bg)
	}
}

func TestFgAndBgManualBackground(t *testing.T) {
	manualBg := blueRGB
	fg, bg := FgAndBg(threeByThree(), AutoColor{AutoFgCount: 1, ManualBackground: &manualBg})
	assertRGBs(t, fg, []RGB{White})
	if bg != blueRGB {
		t.Errorf("background = %v, want BLUE", bg)
	}
}

func TestFgAndBgManualForeground(t *testing.T) {
	fg, bg := FgAndBg(threeByThree(), AutoColor{AutoFgCount: 1, ManualForegrounds: []RGB{White}})
	assertRGBs(t, fg, []RGB{Black, White})
	if bg != blueRGB {
		t.Errorf("background = %v, want BLUE (WHITE excluded as a manual foreground)", bg)
	}
}

func assertRGBs(t *testing.T, got, want []RGB) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}
