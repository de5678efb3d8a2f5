package driver

import (
	"encoding/json"
	"fmt"

	"github.com/gogpu/stringart"
)

// Data is the JSON record emitted to --data-filepath: the resolved args,
// image dimensions, score trajectory, timing, and the full pin/segment
// record of the run.
type Data struct {
	Args           Args               `json:"args"`
	ImageHeight    int                `json:"image_height"`
	ImageWidth     int                `json:"image_width"`
	InitialScore   int64              `json:"initial_score"`
	FinalScore     int64              `json:"final_score"`
	ElapsedSeconds float64            `json:"elapsed_seconds"`
	PinLocations   []stringart.Point  `json:"pin_locations"`
	LineSegments   []segmentTriple    `json:"line_segments"`
}

// segmentTriple marshals a LineSegment as the three-element tuple the JSON
// schema specifies: [endpoint A, endpoint B, "#RRGGBB"], rather than a named
// object, matching the Data JSON schema in §6 literally.
type segmentTriple stringart.LineSegment

func (s segmentTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{s.A, s.B, s.Color.Hex()})
}

func (s *segmentTriple) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &s.A); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &s.B); err != nil {
		return err
	}
	var hex string
	if err := json.Unmarshal(raw[2], &hex); err != nil {
		return err
	}
	rgb, err := stringart.ParseHex(hex)
	if err != nil {
		return err
	}
	s.Color = rgb
	return nil
}

func newData(args Args, width, height int, initialScore, finalScore int64, elapsed float64, pinLocations []stringart.Point, segments []stringart.LineSegment) *Data {
	triples := make([]segmentTriple, len(segments))
	for i, seg := range segments {
		triples[i] = segmentTriple(seg)
	}
	return &Data{
		Args:           args,
		ImageWidth:     width,
		ImageHeight:    height,
		InitialScore:   initialScore,
		FinalScore:     finalScore,
		ElapsedSeconds: elapsed,
		PinLocations:   pinLocations,
		LineSegments:   triples,
	}
}

func marshalData(d *Data) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal data record: %w", err)
	}
	return out, nil
}
