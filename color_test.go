package stringart

import (
	"errors"
	"testing"

	"github.com/gogpu/stringart/apperr"
)

func TestHexFormatting(t *testing.T) {
	cases := []struct {
		c    RGB
		want string
	}{
		{Black, "#000000"},
		{White, "#FFFFFF"},
		{RGB{18, 52, 86}, "#123456"},
		{RGB{-18, 520, 86}, "#00FF56"},
	}
	for _, c := range cases {
		if got := c.c.Hex(); got != c.want {
			t.Errorf("Hex(%+v) = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{Black, White, {18, 52, 86}, {1, 2, 3}, {255, 0, 128}} {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
		}
		if parsed != c {
			t.Errorf("round trip of %+v got %+v", c, parsed)
		}
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#", "#12345", "#1234567", "123456", "#GGGGGG", "#00000g"} {
		if _, err := ParseHex(s); !errors.Is(err, apperr.ErrInvalidHex) {
			t.Errorf("ParseHex(%q) err = %v, want apperr.ErrInvalidHex", s, err)
		}
	}
}

func TestSaturatingAdd(t *testing.T) {
	c := RGB{R: 2147483647, G: 0, B: -2147483648}
	got := c.Add(RGB{R: 1, G: 0, B: -1})
	if got.R != 2147483647 {
		t.Errorf("R saturated sum = %d, want MaxInt32", got.R)
	}
	if got.B != -2147483648 {
		t.Errorf("B saturated sum = %d, want MinInt32", got.B)
	}
}

func TestNegMinInt32(t *testing.T) {
	c := RGB{R: -2147483648}
	got := c.Neg()
	if got.R != 2147483647 {
		t.Errorf("Neg(MinInt32) = %d, want MaxInt32", got.R)
	}
}

func TestClampOutOfRange(t *testing.T) {
	r, g, b := RGB{R: -5, G: 300, B: 128}.Clamp()
	if r != 0 || g != 255 || b != 128 {
		t.Errorf("Clamp = (%d,%d,%d), want (0,255,128)", r, g, b)
	}
}
