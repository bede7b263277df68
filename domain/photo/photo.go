package photo

import (
	"image"

	"github.com/soocke/photo-editor-go/domain/crop"
)

// Photo is the single image being edited: its current source, decoded
// raster and natural size. The rendered size is owned by the host and is
// never stored here. The zero value is an empty photo.
type Photo struct {
	src     Source
	raster  image.Image
	natural crop.Size
}

// Set swaps the source and raster. The natural size follows the new raster.
func (p *Photo) Set(src Source, raster image.Image) {
	if p == nil {
		return
	}
	p.src = src
	p.raster = raster
	p.natural = crop.Size{}
	if raster != nil {
		b := raster.Bounds()
		p.natural = crop.Size{Width: b.Dx(), Height: b.Dy()}
	}
}

// Source returns the current source reference.
func (p *Photo) Source() Source {
	if p == nil {
		return ""
	}
	return p.src
}

// Raster returns the decoded image, or nil when nothing is loaded.
func (p *Photo) Raster() image.Image {
	if p == nil {
		return nil
	}
	return p.raster
}

// NaturalSize returns the intrinsic pixel size.
func (p *Photo) NaturalSize() crop.Size {
	if p == nil {
		return crop.Size{}
	}
	return p.natural
}

// Loaded reports whether a raster is present.
func (p *Photo) Loaded() bool { return p != nil && p.raster != nil }
