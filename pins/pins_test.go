package pins

import (
	"math/rand"
	"testing"

	"github.com/gogpu/stringart"
)

func TestPerimeterZeroReturnsMinimumFour(t *testing.T) {
	got := Generate(Perimeter, 0, 1234, 1234, nil)
	if len(got) != 4 {
		t.Fatalf("perimeter(0) = %d pins, want 4", len(got))
	}
}

func TestGridZeroReturnsNone(t *testing.T) {
	got := Generate(Grid, 0, 1234, 1234, nil)
	if len(got) != 0 {
		t.Fatalf("grid(0) = %d pins, want 0", len(got))
	}
}

func TestRandomZeroReturnsNone(t *testing.T) {
	got := Generate(Random, 0, 1234, 1234, rand.New(rand.NewSource(1)))
	if len(got) != 0 {
		t.Fatalf("random(0) = %d pins, want 0", len(got))
	}
}

func TestCircleZeroReturnsNone(t *testing.T) {
	got := Generate(Circle, 0, 1234, 1234, nil)
	if len(got) != 0 {
		t.Fatalf("circle(0) = %d pins, want 0", len(got))
	}
}

func TestPerimeterSaturatesToPerimeterPixelCount(t *testing.T) {
	got := Generate(Perimeter, 60, 10, 10, nil)
	if len(got) != 36 {
		t.Fatalf("perimeter(60, 10x10) = %d pins, want 36", len(got))
	}
}

func TestGridSaturatesToArea(t *testing.T) {
	got := Generate(Grid, 600, 10, 10, nil)
	if len(got) != 100 {
		t.Fatalf("grid(600, 10x10) = %d pins, want 100", len(got))
	}
}

func TestRandomSaturatesToArea(t *testing.T) {
	got := Generate(Random, 600, 10, 10, rand.New(rand.NewSource(1)))
	if len(got) != 100 {
		t.Fatalf("random(600, 10x10) = %d pins, want 100", len(got))
	}
}

func TestPerimeterExactCounts(t *testing.T) {
	counts := []uint32{4, 8, 16, 60, 120, 200, 400, 1000}
	sizes := [][2]uint32{{123, 457}, {2880, 1800}, {1234, 5678}, {10, 10000}}
	for _, count := range counts {
		for _, wh := range sizes {
			got := Generate(Perimeter, count, wh[0], wh[1], nil)
			if uint32(len(got)) != count {
				t.Errorf("perimeter(%d, %dx%d) = %d pins, want %d", count, wh[0], wh[1], len(got), count)
			}
		}
	}
}

func TestPerimeterLiteralLocations(t *testing.T) {
	want := []stringart.Point{
		stringart.Pt(0, 0),
		stringart.Pt(12, 0),
		stringart.Pt(24, 0),
		stringart.Pt(24, 12),
		stringart.Pt(24, 24),
		stringart.Pt(12, 24),
		stringart.Pt(0, 24),
		stringart.Pt(0, 12),
	}
	got := Generate(Perimeter, 8, 25, 25, nil)
	assertPointsEqual(t, want, got)
}

func TestGridLiteralLocations(t *testing.T) {
	want := []stringart.Point{
		stringart.Pt(0, 0),
		stringart.Pt(12, 0),
		stringart.Pt(24, 0),
		stringart.Pt(0, 12),
		stringart.Pt(12, 12),
		stringart.Pt(24, 12),
		stringart.Pt(0, 24),
		stringart.Pt(12, 24),
		stringart.Pt(24, 24),
	}
	got := Generate(Grid, 9, 25, 25, nil)
	assertPointsEqual(t, want, got)
}

func assertPointsEqual(t *testing.T, want, got []stringart.Point) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("got %d points, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRandomNoDuplicates(t *testing.T) {
	got := Generate(Random, 50, 100, 100, rand.New(rand.NewSource(42)))
	seen := make(map[stringart.Point]bool)
	for _, p := range got {
		if seen[p] {
			t.Fatalf("duplicate pin %v", p)
		}
		seen[p] = true
	}
	if len(got) != 50 {
		t.Fatalf("got %d pins, want 50", len(got))
	}
}
