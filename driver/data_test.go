package driver

import (
	"encoding/json"
	"testing"

	"github.com/gogpu/stringart"
)

func TestDataRoundTrip(t *testing.T) {
	args := Args{InputFilepath: "in.png", StepSize: 1, StringAlpha: 0.2}
	segments := []stringart.LineSegment{
		{A: stringart.Pt(0, 0), B: stringart.Pt(5, 5), Color: stringart.White},
	}
	data := newData(args, 10, 10, 1000, 200, 1.5, []stringart.Point{stringart.Pt(0, 0)}, segments)

	raw, err := marshalData(data)
	if err != nil {
		t.Fatalf("marshalData: %v", err)
	}

	var decoded Data
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.InitialScore != 1000 || decoded.FinalScore != 200 {
		t.Errorf("scores = (%d, %d), want (1000, 200)", decoded.InitialScore, decoded.FinalScore)
	}
	if len(decoded.LineSegments) != 1 {
		t.Fatalf("got %d line segments, want 1", len(decoded.LineSegments))
	}
	got := stringart.LineSegment(decoded.LineSegments[0])
	if got.A != segments[0].A || got.B != segments[0].B || got.Color != segments[0].Color {
		t.Errorf("round-tripped segment = %+v, want %+v", got, segments[0])
	}
}

func TestSegmentTripleMarshalsAsArray(t *testing.T) {
	seg := segmentTriple(stringart.LineSegment{A: stringart.Pt(1, 2), B: stringart.Pt(3, 4), Color: stringart.White})
	raw, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		t.Fatalf("expected a JSON array, got %s: %v", raw, err)
	}
	if len(arr) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr))
	}
}
