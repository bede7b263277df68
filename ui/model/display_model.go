package model

import (
	"image"
)

// DisplayModel holds the on-screen size of the rendered photo. The photo is
// drawn at the origin of its container, so the container box and the image
// box share the same origin. Zero value means nothing rendered and is usable.
// No synchronization needed: updates and reads occur on the UI thread.
type DisplayModel struct {
	box image.Rectangle
}

func NewDisplayModel() *DisplayModel { return &DisplayModel{} }

// SetSize records the rendered size. Non-positive sizes clear the box.
func (m *DisplayModel) SetSize(w, h int) {
	if m == nil {
		return
	}
	if w <= 0 || h <= 0 {
		m.box = image.Rectangle{}
		return
	}
	m.box = image.Rect(0, 0, w, h)
}

// Box returns the rendered rectangle (may be empty).
func (m *DisplayModel) Box() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.box
}
