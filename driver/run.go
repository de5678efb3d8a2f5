package driver

import (
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/apperr"
	"github.com/gogpu/stringart/internal/parallel"
	"github.com/gogpu/stringart/optimize"
	"github.com/gogpu/stringart/pins"
)

// Run executes one end-to-end invocation per §4.7: decode the target,
// resolve the palette, build the working reference image, generate pins,
// run the optimizer, then emit whichever output artifacts were requested.
func Run(args Args) (*Data, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	target, err := decodeInput(args.InputFilepath)
	if err != nil {
		return nil, err
	}
	bounds := target.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	foregrounds, background := resolvePalette(target, args)

	working := stringart.FromImage(target).Negated().AddRGB(background)

	pinLocations := generatePins(args, width, height)

	if args.PinsFilepath != "" {
		if err := writePNG(args.PinsFilepath, renderPinMap(width, height, pinLocations)); err != nil {
			return nil, err
		}
	}

	transformed := make([]stringart.RGB, len(foregrounds))
	for i, fg := range foregrounds {
		transformed[i] = fg.Sub(background)
	}

	pool := parallel.NewWorkerPool(runtime.GOMAXPROCS(0))
	defer pool.Close()

	var frames *gifSink
	if args.GifFilepath != "" {
		frames = newGIFSink()
	}

	const maxInt = uint64(^uint(0) >> 1)
	maxStrings := args.MaxStrings
	if maxStrings > maxInt {
		maxStrings = maxInt
	}

	optCfg := optimize.Config{
		Pins:       pinLocations,
		Palette:    transformed,
		Step:       args.StepSize,
		Alpha:      args.StringAlpha,
		MaxStrings: int(maxStrings),
		Pool:       pool,
		Background: background,
		Verbosity:  args.Verbosity,
	}
	if frames != nil {
		optCfg.Frames = frames
	}
	if args.DumpDir != "" {
		optCfg.Dumper = DebugDumper{Dir: args.DumpDir}
	}

	startedAt := time.Now()
	result := optimize.Run(working, optCfg)

	rebiased := make([]stringart.LineSegment, len(result.Segments))
	for i, seg := range result.Segments {
		rebiased[i] = stringart.LineSegment{A: seg.A, B: seg.B, Color: seg.Color.Add(background)}
	}
	elapsed := time.Since(startedAt).Seconds()

	if args.OutputFilepath != "" {
		// working holds composed − target; adding the target back yields the
		// composed image (background plus strings).
		composedRef := stringart.FromImage(target)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				composedRef.Set(x, y, composedRef.At(x, y).Add(working.At(x, y)))
			}
		}
		composed := composedRef.Color()
		if err := writePNG(args.OutputFilepath, composed); err != nil {
			return nil, err
		}
	}
	if frames != nil {
		if err := frames.write(args.GifFilepath); err != nil {
			return nil, err
		}
	}

	data := newData(args, width, height, result.InitialScore, result.FinalScore, elapsed, pinLocations, rebiased)
	if args.DataFilepath != "" {
		out, err := marshalData(data)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(args.DataFilepath, out, 0o644); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperr.ErrOutputWrite, args.DataFilepath, err)
		}
	}

	return data, nil
}

func resolvePalette(target image.Image, args Args) (foregrounds []stringart.RGB, background stringart.RGB) {
	if cfg, ok := args.AutoColor(); ok {
		return stringart.FgAndBg(target, cfg)
	}
	fg := args.ForegroundColors
	if len(fg) == 0 {
		fg = []stringart.RGB{DefaultForeground}
	}
	bg := args.BackgroundColor
	if !args.BackgroundColorSet {
		bg = DefaultBackground
	}
	return fg, bg
}

func generatePins(args Args, width, height int) []stringart.Point {
	var rng *rand.Rand
	if args.PinArrangement == pins.Random {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return pins.Generate(args.PinArrangement, args.PinCount, uint32(width), uint32(height), rng)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrOutputWrite, path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrOutputWrite, path, err)
	}
	return nil
}
