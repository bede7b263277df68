package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	placeholderFill = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	outlineColor    = color.NRGBA{R: 0x00, G: 0xa2, B: 0xff, A: 0xff}
)

const (
	dimPercent   = -45
	outlineWidth = 2
)

// SelectionOverlay returns a copy of img with everything outside r dimmed
// and r outlined. r is in img coordinates and is clipped to the image.
// An empty r yields an undimmed copy.
func SelectionOverlay(img image.Image, r image.Rectangle) *image.NRGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	r = r.Add(b.Min).Intersect(b)
	if r.Empty() {
		return imaging.Clone(img)
	}
	out := imaging.AdjustBrightness(img, dimPercent)
	out = imaging.Paste(out, imaging.Crop(img, r), r.Min.Sub(b.Min))
	drawOutline(out, r.Sub(b.Min))
	return out
}

func drawOutline(dst *image.NRGBA, r image.Rectangle) {
	w := outlineWidth
	if r.Dx() < 2*w || r.Dy() < 2*w {
		w = 1
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w),
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y),
		image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(dst.Bounds())
		for y := e.Min.Y; y < e.Max.Y; y++ {
			for x := e.Min.X; x < e.Max.X; x++ {
				dst.SetNRGBA(x, y, outlineColor)
			}
		}
	}
}
