package driver

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/gogpu/stringart/apperr"
)

// gifSink accumulates frames in memory and writes them as one infinitely
// looping GIF, with the terminal frame duplicated (not lengthened) 10 times
// for a visible hold — per §6, "terminal frame duplicated 10x".
type gifSink struct {
	frames []*image.Paletted
}

func newGIFSink() *gifSink {
	return &gifSink{}
}

// PushFrame implements optimize.FrameSink.
func (g *gifSink) PushFrame(img image.Image) {
	bounds := img.Bounds()
	pal := image.NewPaletted(bounds, palette.WebSafe)
	draw.Draw(pal, bounds, img, bounds.Min, draw.Src)
	g.frames = append(g.frames, pal)
}

func (g *gifSink) write(path string) error {
	if len(g.frames) == 0 {
		return nil
	}

	delays := make([]int, len(g.frames))
	for i := range delays {
		delays[i] = 10 // 100ms per frame
	}

	out := &gif.GIF{
		Image:     g.frames,
		Delay:     delays,
		LoopCount: 0,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrOutputWrite, path, err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrOutputWrite, path, err)
	}
	return nil
}
