package view

import (
	"image"

	"github.com/soocke/photo-editor-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PhotoPreview shows the photo being edited and reports pointer drags over it.
// The image is anchored at the label's top-left corner with no border or
// padding, so event coordinates are image coordinates.
type PhotoPreview interface {
	ShowPhoto(img image.Image)
	BindPointer(down, move func(x, y int), up func())
}

type photoPreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance, deleted on replace
}

// NewPhotoPreview creates the photo label spanning columns 0-3 of row.
func NewPhotoPreview(row, w, h int) PhotoPreview {
	ph := NewPhoto(Data(images.EncodePNG(images.Placeholder(w, h))))
	lbl := Label(Image(ph), Borderwidth(0), Padx(0), Pady(0), Anchor("nw"), Relief("flat"))
	Grid(lbl, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return &photoPreview{label: lbl, prevPhoto: ph}
}

func (v *photoPreview) ShowPhoto(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// BindPointer wires primary-button press, motion and release.
func (v *photoPreview) BindPointer(down, move func(x, y int), up func()) {
	if v.label == nil {
		return
	}
	Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) { down(e.X, e.Y) }))
	Bind(v.label, "<B1-Motion>", Command(func(e *Event) { move(e.X, e.Y) }))
	Bind(v.label, "<ButtonRelease-1>", Command(func() { up() }))
}
