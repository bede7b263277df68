package crop

import (
	"errors"
	"math"
)

// DefaultMinSelection is the minimum on-screen width and height (exclusive)
// a drag must reach before it becomes a committed selection.
const DefaultMinSelection = 10.0

var (
	// ErrInvalidDimensions reports a non-positive mapped crop size.
	ErrInvalidDimensions = errors.New("invalid crop dimensions")
	// ErrExport reports a failure while drawing or encoding the cropped raster.
	ErrExport = errors.New("error cropping image")
)

// Point is a position in on-screen coordinates.
type Point struct{ X, Y float64 }

// Sub returns p translated so that o becomes the origin.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Rect is an axis-aligned rectangle. It is used for on-screen bounding boxes
// (image, container) as well as for selections and source-pixel regions.
type Rect struct {
	Left, Top, Width, Height float64
}

// RectFromPoints returns the rectangle spanned by a and b regardless of the
// direction of the drag. Width and height are never negative.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Translate moves the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Size is the natural pixel size of a raster.
type Size struct{ Width, Height int }

// State is the crop tool state owned by one editor session.
//
// Active mirrors the CropActive edit mode. Dragging, Anchor and Live describe
// the transient drag between pointer-down and pointer-up; Anchor and Live are
// in container-relative coordinates. Selection is the committed rectangle
// relative to the image's rendered top-left corner; at most one exists.
type State struct {
	Active   bool
	Dragging bool
	Anchor   Point
	Live     Rect
	// LiveVisible reports whether the live rectangle should be drawn.
	LiveVisible bool
	Selection   *Rect
	Notice      string
}

// HasSelection reports whether a committed selection exists.
func (s State) HasSelection() bool { return s.Selection != nil }
