package stringart

import "testing"

func TestLineIteratorLiteral(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(0, 10))
	samples := line.Samples(2)

	want := []Vector{{0, 0}, {0, 2}, {0, 4}, {0, 6}, {0, 8}, {0, 10}}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d: %v", len(samples), len(want), samples)
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestAccumulationIdentity(t *testing.T) {
	cases := []struct {
		a, b Point
		step float64
	}{
		{Pt(0, 0), Pt(0, 10), 2},
		{Pt(0, 0), Pt(10, 0), 1},
		{Pt(1, 1), Pt(9, 9), 0.5},
		{Pt(5, 5), Pt(5, 5), 1},
	}
	for _, c := range cases {
		line := NewLine(c.a, c.b)
		dist := c.b.Vector().Sub(c.a.Vector()).Length()
		want := int(dist/c.step) + 1

		got := len(line.Samples(c.step))
		if got != want {
			t.Errorf("line %v-%v step %v: got %d samples, want floor(%v/%v)+1 = %d", c.a, c.b, c.step, got, dist, c.step, want)
		}
	}
}

func TestDegenerateLineBasis(t *testing.T) {
	// A zero-length line must not divide by zero when computing a step basis.
	line := NewLine(Pt(5, 5), Pt(5, 5))
	samples := line.Samples(1)
	if len(samples) == 0 {
		t.Fatal("expected at least one sample for a degenerate (single-point) line")
	}
	for _, s := range samples {
		if s != (Vector{5, 5}) {
			t.Errorf("degenerate line sample = %v, want (5,5)", s)
		}
	}
}
