package optimize

import (
	"image"
	"log/slog"
	"math"
	"sort"

	"github.com/gogpu/stringart"
	"github.com/gogpu/stringart/internal/parallel"
)

// FrameSink receives one composed-image frame per accepted batch, for GIF
// capture. Implementations must not retain img past the call (the optimizer
// may reuse backing storage on the next render).
type FrameSink interface {
	PushFrame(img image.Image)
}

// DebugDumper receives numbered intermediate reference-image snapshots when
// verbosity is high enough to want them.
type DebugDumper interface {
	Dump(n int, img image.Image)
}

// Config holds everything the main loop needs besides the mutable
// RefImage and segment list it builds up.
type Config struct {
	Pins    []stringart.Point
	Palette []stringart.RGB // background already subtracted
	Step    float64
	Alpha   float64

	// MaxStrings bounds the total number of accepted segments.
	MaxStrings int

	Pool *parallel.WorkerPool

	// Background is added back to a segment's color only for the purpose
	// of human-readable log lines; stored segments keep the
	// background-subtracted color until the driver rebiases them.
	Background RGB

	Frames    FrameSink
	Dumper    DebugDumper
	Verbosity int
}

// RGB is an alias so callers don't need two imports for one field.
type RGB = stringart.RGB

// Result is everything the driver needs after the loop converges.
type Result struct {
	Segments     []stringart.LineSegment
	InitialScore int64
	FinalScore   int64
}

// Run executes §4.6's greedy bidirectional hill-climb against ref, mutating
// it in place, until neither an add nor a remove phase can find a strictly
// improving move.
func Run(ref *stringart.RefImage, cfg Config) Result {
	logger := stringart.Logger()

	initialScore := ref.Score()
	var segments []stringart.LineSegment

	keepAdding := true
	keepRemoving := true

	batch := cfg.MaxStrings / 10
	if batch > 100 {
		batch = 100
	}
	if batch < 1 {
		batch = 1
	}
	cap_ := 100

	frameCount := 0
	captureFrame := func() {
		if cfg.Frames == nil {
			return
		}
		cfg.Frames.PushFrame(ref.Color())
		frameCount++
	}
	dump := func() {
		if cfg.Dumper == nil || cfg.Verbosity < 3 {
			return
		}
		cfg.Dumper.Dump(frameCount, ref.Color())
	}

	for keepAdding || keepRemoving {
		if batch > cap_ {
			batch = cap_
		}
		cap_--

		for keepAdding {
			keepAdding = false

			remaining := cfg.MaxStrings - len(segments)
			k := batch
			if remaining < k {
				k = remaining
			}
			found := FindBest(cfg.Pool, cfg.Pins, ref, cfg.Step, cfg.Alpha, cfg.Palette, k)

			if len(found) > 0 {
				for _, cand := range found {
					pl := stringart.RasterizeLine(cand.Segment.Line(), cand.Segment.Color, cfg.Step, cfg.Alpha)
					ref.Add(pl)
					segments = append(segments, cand.Segment)
					logAdd(logger, cfg.Verbosity, len(segments), cand.Delta, cand.Segment, cfg.Background)
				}
				keepAdding = true
				keepRemoving = true
				captureFrame()
				dump()
			}

			if len(found) == batch {
				batch = roundPositive(float64(batch) * 1.1)
			}
			if len(segments) >= cfg.MaxStrings {
				keepAdding = false
			}
		}

		batch = roundPositive(float64(batch) * 0.9)
		if batch < 1 {
			batch = 1
		}

		for keepRemoving {
			keepRemoving = false

			k := batch / 10
			if k < 1 {
				k = 1
			}
			if len(segments) < k {
				k = len(segments)
			}
			found := FindWorst(cfg.Pool, segments, ref, cfg.Step, cfg.Alpha, k)

			if len(found) > 0 {
				sort.Slice(found, func(i, j int) bool { return found[i].Index > found[j].Index })
				for _, rm := range found {
					seg := segments[rm.Index]
					pl := stringart.RasterizeLine(seg.Line(), seg.Color, cfg.Step, cfg.Alpha)
					ref.Sub(pl)
					segments = append(segments[:rm.Index], segments[rm.Index+1:]...)
					logRemove(logger, cfg.Verbosity, len(segments), rm.Delta, seg, cfg.Background)
				}
				keepAdding = true
				keepRemoving = true
				captureFrame()
				dump()
			}
			if len(segments) == 0 {
				keepRemoving = false
			}
		}
	}

	finalScore := ref.Score()
	if cfg.Verbosity >= 2 {
		logger.Info("optimizer converged", "initial_score", initialScore, "final_score", finalScore, "segments", len(segments))
	}
	for i := 0; i < 10; i++ {
		captureFrame()
	}

	return Result{Segments: segments, InitialScore: initialScore, FinalScore: finalScore}
}

func roundPositive(f float64) int {
	return int(math.Round(f))
}

func logAdd(logger *slog.Logger, verbosity, count int, delta int64, seg stringart.LineSegment, background RGB) {
	if verbosity < 1 {
		return
	}
	logger.Info("added", "count", count, "delta", delta, "a", seg.A, "b", seg.B, "color", seg.Color.Add(background))
}

func logRemove(logger *slog.Logger, verbosity, count int, delta int64, seg stringart.LineSegment, background RGB) {
	if verbosity < 1 {
		return
	}
	logger.Info("removed", "count", count, "delta", delta, "a", seg.A, "b", seg.B, "color", seg.Color.Add(background))
}
