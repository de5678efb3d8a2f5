// Command stringart renders a target image as straight-line "strings"
// stretched between pins on a canvas, greedily adding and removing strings
// to minimize the squared-error distance to the target.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/apperr"
	"github.com/gogpu/stringart/driver"
	"github.com/gogpu/stringart/pins"
)

// hexList is a flag.Value collecting repeated --foreground-color /
// -f occurrences into an ordered slice, in the order given on the command
// line.
type hexList struct {
	values *[]stringart.RGB
}

func (h hexList) String() string {
	if h.values == nil {
		return ""
	}
	return fmt.Sprint(*h.values)
}

func (h hexList) Set(s string) error {
	rgb, err := stringart.ParseHex(s)
	if err != nil {
		return err
	}
	*h.values = append(*h.values, rgb)
	return nil
}

// arrangementFlag is a flag.Value for the --pin-arrangement enum.
type arrangementFlag struct {
	value *pins.Arrangement
}

func (a arrangementFlag) String() string {
	if a.value == nil {
		return "perimeter"
	}
	return a.value.String()
}

func (a arrangementFlag) Set(s string) error {
	parsed, err := pins.ParseArrangement(s)
	if err != nil {
		return err
	}
	*a.value = parsed
	return nil
}

// countFlag is a flag.Value that increments on every occurrence, for
// --verbose/-v's "count" semantics.
type countFlag struct {
	value *int
}

func (c countFlag) String() string {
	if c.value == nil {
		return "0"
	}
	return fmt.Sprintf("%d", *c.value)
}

func (c countFlag) Set(string) error {
	*c.value++
	return nil
}

// IsBoolFlag lets -v appear without a value, so each occurrence counts once.
func (c countFlag) IsBoolFlag() bool { return true }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fs := flag.NewFlagSet("stringart", flag.ContinueOnError)

	var args driver.Args
	var arrangement pins.Arrangement
	var autoColorCount int
	var autoColorSet bool
	var backgroundColor stringart.RGB
	var verbosity int

	stringFlag := func(val *string, long, short, def, usage string) {
		fs.StringVar(val, long, def, usage)
		fs.StringVar(val, short, def, usage+" (shorthand)")
	}

	stringFlag(&args.InputFilepath, "input-filepath", "i", "", "path to the target image")
	stringFlag(&args.OutputFilepath, "output-filepath", "o", "", "where to save the composed output image")
	stringFlag(&args.PinsFilepath, "pins-filepath", "p", "", "where to save the pin-location image")
	stringFlag(&args.DataFilepath, "data-filepath", "d", "", "where to save the JSON data record")
	stringFlag(&args.GifFilepath, "gif-filepath", "g", "", "where to save a GIF of the creation process")
	stringFlag(&args.DumpDir, "dump-dir", "x", "", "directory for intermediate reference-image dumps at verbosity 3 (-v -v -v)")

	fs.Uint64Var(&args.MaxStrings, "max-strings", defaultMaxStrings, "maximum number of strings in the finished work")
	fs.Uint64Var(&args.MaxStrings, "m", defaultMaxStrings, "maximum number of strings (shorthand)")

	fs.Float64Var(&args.StepSize, "step-size", 1.0, "sub-pixel sampling step used while rasterizing a string")
	fs.Float64Var(&args.StepSize, "s", 1.0, "sub-pixel sampling step (shorthand)")

	fs.Float64Var(&args.StringAlpha, "string-alpha", 0.2, "per-string opacity in (0, 1]")
	fs.Float64Var(&args.StringAlpha, "a", 0.2, "per-string opacity (shorthand)")

	var pinCount uint
	fs.UintVar(&pinCount, "pin-count", 200, "approximate number of pins to place")
	fs.UintVar(&pinCount, "c", 200, "approximate number of pins (shorthand)")

	fs.Var(arrangementFlag{&arrangement}, "pin-arrangement", "pin layout: perimeter, grid, circle, or random")
	fs.Var(arrangementFlag{&arrangement}, "r", "pin layout (shorthand)")

	bgHex := "#000000"
	fs.StringVar(&bgHex, "background-color", bgHex, "background color, #RRGGBB")
	fs.StringVar(&bgHex, "b", bgHex, "background color (shorthand)")

	fs.Var(hexList{&args.ForegroundColors}, "foreground-color", "string color, #RRGGBB (repeatable)")
	fs.Var(hexList{&args.ForegroundColors}, "f", "string color, repeatable (shorthand)")

	fs.IntVar(&autoColorCount, "auto-color", -1, "automatically choose this many foreground colors and a background")
	fs.IntVar(&autoColorCount, "u", -1, "automatically choose colors (shorthand)")

	fs.Var(countFlag{&verbosity}, "verbose", "increase log verbosity (repeatable)")
	fs.Var(countFlag{&verbosity}, "v", "increase log verbosity (shorthand)")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "stringart renders an image as straight-line strings between pins.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "background-color", "b":
			args.BackgroundColorSet = true
		case "foreground-color", "f":
			args.ForegroundColorsSet = true
		case "auto-color", "u":
			autoColorSet = true
		}
	})

	bg, err := stringart.ParseHex(bgHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	backgroundColor = bg
	args.BackgroundColor = backgroundColor
	args.PinCount = uint32(pinCount)
	args.PinArrangement = arrangement
	args.Verbosity = verbosity
	if autoColorSet {
		args.AutoColorCount = &autoColorCount
	}

	configureLogging(verbosity)

	data, err := driver.Run(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}

	if verbosity >= 2 {
		fmt.Printf("initial score %d -> final score %d in %.2fs (%d strings)\n",
			data.InitialScore, data.FinalScore, data.ElapsedSeconds, len(data.LineSegments))
	}
	return 0
}

// defaultMaxStrings is the CLI table's "platform-max" default.
const defaultMaxStrings = uint64(^uint(0) >> 1)

func configureLogging(verbosity int) {
	if verbosity <= 0 {
		return
	}
	level := slog.LevelInfo
	if verbosity >= 3 {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	stringart.SetLogger(slog.New(handler))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidArg), errors.Is(err, apperr.ErrInvalidHex):
		return 2
	case errors.Is(err, apperr.ErrInputOpen), errors.Is(err, apperr.ErrInputDecode):
		return 3
	case errors.Is(err, apperr.ErrOutputWrite):
		return 4
	default:
		return 1
	}
}
