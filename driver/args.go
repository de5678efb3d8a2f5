// Package driver wires together image decoding, palette resolution, pin
// generation, and the optimizer into the end-to-end CLI pipeline, and emits
// the composed image, pin-map image, JSON data record, and GIF outputs.
package driver

import (
	"fmt"
	"math"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/apperr"
	"github.com/gogpu/stringart/pins"
)

// Args is the fully-resolved, validated set of inputs to one driver run —
// the Go analog of the CLI's parsed flag set.
type Args struct {
	InputFilepath   string `json:"input_filepath"`
	OutputFilepath  string `json:"output_filepath,omitempty"`
	PinsFilepath    string `json:"pins_filepath,omitempty"`
	DataFilepath    string `json:"data_filepath,omitempty"`
	GifFilepath     string `json:"gif_filepath,omitempty"`
	DumpDir         string `json:"dump_dir,omitempty"`
	MaxStrings      uint64 `json:"max_strings"`
	StepSize        float64 `json:"step_size"`
	StringAlpha     float64 `json:"string_alpha"`
	PinCount        uint32  `json:"pin_count"`
	PinArrangement  pins.Arrangement `json:"pin_arrangement"`

	// BackgroundColor and ForegroundColors are the user's manual palette
	// choices. When AutoColorCount is set, these are *inputs* to the
	// auto-palette (manual overrides) rather than the final answer, and
	// BackgroundColorSet / ForegroundColorsSet distinguish "the user typed
	// this flag" from "this is just the CLI's hardcoded default" — the
	// CLI's --auto-color changes the meaning of an un-typed
	// --background-color/--foreground-color from "use this" to "ignore,
	// let auto-palette decide".
	BackgroundColor     stringart.RGB   `json:"background_color"`
	BackgroundColorSet  bool            `json:"-"`
	ForegroundColors    []stringart.RGB `json:"foreground_colors"`
	ForegroundColorsSet bool            `json:"-"`

	// AutoColorCount is non-nil when --auto-color was given; its value is
	// the requested automatic foreground count.
	AutoColorCount *int `json:"auto_color,omitempty"`

	Verbosity int `json:"verbosity"`
}

// DefaultBackground and DefaultForeground mirror the CLI's documented
// defaults (#000000 background, one #FFFFFF foreground).
var (
	DefaultBackground = stringart.Black
	DefaultForeground = stringart.White
)

// Validate checks the required input path and the numeric constraints the
// CLI table documents (the pin-arrangement enum is checked when it is parsed),
// returning an apperr.ErrInvalidArg-wrapped error describing the first
// violation found.
func (a *Args) Validate() error {
	if a.InputFilepath == "" {
		return fmt.Errorf("%w: --input-filepath is required", apperr.ErrInvalidArg)
	}
	if a.StepSize <= 0 || math.IsNaN(a.StepSize) {
		return fmt.Errorf("%w: --step-size must be > 0, got %v", apperr.ErrInvalidArg, a.StepSize)
	}
	if a.StringAlpha <= 0 || a.StringAlpha > 1 || math.IsNaN(a.StringAlpha) {
		return fmt.Errorf("%w: --string-alpha must be in (0, 1], got %v", apperr.ErrInvalidArg, a.StringAlpha)
	}
	if a.AutoColorCount != nil && *a.AutoColorCount < 0 {
		return fmt.Errorf("%w: --auto-color must be >= 0, got %d", apperr.ErrInvalidArg, *a.AutoColorCount)
	}
	return nil
}

// AutoColor reports whether automatic palette selection was requested, and
// builds the stringart.AutoColor config to run it with if so.
func (a *Args) AutoColor() (stringart.AutoColor, bool) {
	if a.AutoColorCount == nil {
		return stringart.AutoColor{}, false
	}
	cfg := stringart.AutoColor{AutoFgCount: *a.AutoColorCount}
	if a.ForegroundColorsSet {
		cfg.ManualForegrounds = a.ForegroundColors
	}
	if a.BackgroundColorSet {
		bg := a.BackgroundColor
		cfg.ManualBackground = &bg
	}
	return cfg, true
}
