package driver

import (
	"image"
	"image/color"

	"github.com/gogpu/stringart"
)

const pinCrosshairArm = 3

// renderPinMap draws a white canvas with a black cross mark (arm length 3
// pixels, clipped to bounds) at every pin.
func renderPinMap(width, height int, pinLocations []stringart.Point) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	for _, p := range pinLocations {
		x, y := int(p.X), int(p.Y)
		for dx := -pinCrosshairArm; dx <= pinCrosshairArm; dx++ {
			xx := x + dx
			if xx >= 0 && xx < width {
				img.SetGray(xx, y, color.Gray{Y: 0})
			}
		}
		for dy := -pinCrosshairArm; dy <= pinCrosshairArm; dy++ {
			yy := y + dy
			if yy >= 0 && yy < height {
				img.SetGray(x, yy, color.Gray{Y: 0})
			}
		}
	}
	return img
}
