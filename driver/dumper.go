package driver

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DebugDumper writes numbered intermediate reference-image snapshots under
// Dir, for verbosity >= 3. It generalizes the original implementation's
// hardcoded absolute-path debug saves into a configurable directory.
type DebugDumper struct {
	Dir string
}

// Dump implements optimize.DebugDumper.
func (d DebugDumper) Dump(n int, img image.Image) {
	if d.Dir == "" {
		return
	}
	path := filepath.Join(d.Dir, fmt.Sprintf("ref-%d.png", n))
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	_ = png.Encode(f, img)
}
