package crop

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// PixelRect rounds a source rectangle to the integer region copied from the
// source raster: the origin is floored and the size truncated, matching how
// a canvas surface sizes itself from fractional dimensions.
func PixelRect(r Rect) image.Rectangle {
	x0 := int(math.Floor(r.Left))
	y0 := int(math.Floor(r.Top))
	return image.Rect(x0, y0, x0+int(r.Width), y0+int(r.Height))
}

// Export copies the source-pixel region r of src into a new surface sized
// r.Width x r.Height. Parts of r outside src stay transparent.
func Export(src image.Image, r Rect) (out *image.NRGBA, err error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: no source raster", ErrExport)
	}
	px := PixelRect(r)
	if px.Dx() < 1 || px.Dy() < 1 {
		return nil, ErrInvalidDimensions
	}
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrExport, rec)
		}
	}()
	b := src.Bounds()
	region := px.Add(b.Min)
	surface := imaging.New(px.Dx(), px.Dy(), color.Transparent)
	visible := region.Intersect(b)
	if visible.Empty() {
		return surface, nil
	}
	patch := imaging.Crop(src, visible)
	return imaging.Paste(surface, patch, visible.Min.Sub(region.Min)), nil
}

// EncodePNG encodes img losslessly.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}
