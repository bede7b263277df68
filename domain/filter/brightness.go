package filter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Brightness bounds, in percent of the original.
const (
	BrightnessNeutral = 100
	BrightnessMin     = 0
	BrightnessMax     = 200
)

// ClampBrightness limits percent to the supported range.
func ClampBrightness(percent int) int {
	if percent < BrightnessMin {
		return BrightnessMin
	}
	if percent > BrightnessMax {
		return BrightnessMax
	}
	return percent
}

// Brightness returns img with each colour channel scaled to percent of its
// original value (100 leaves it unchanged, 0 is black). Alpha is kept.
func Brightness(img image.Image, percent int) *image.NRGBA {
	if img == nil {
		return nil
	}
	factor := float64(ClampBrightness(percent)) / BrightnessNeutral
	scale := func(v uint8) uint8 {
		f := float64(v)*factor + 0.5
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
	})
}
