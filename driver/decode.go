package driver

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/stringart/apperr"
)

// decodeInput opens and decodes the target image. The blank imports above
// register bmp, tiff, and webp decoders alongside the standard library's
// gif, jpeg, and png, so image.Decode recognizes any common raster format.
func decodeInput(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrInputOpen, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrInputDecode, path, err)
	}
	return img, nil
}
