package crop

import "math"

// Scale holds the rendered-to-natural ratios for both axes.
type Scale struct{ X, Y float64 }

// ScaleFor computes natural/rendered per axis. A non-positive rendered
// dimension gives a zero factor so that the mapped size fails validation
// instead of overflowing to infinity.
func ScaleFor(rendered Rect, natural Size) Scale {
	var s Scale
	if rendered.Width > 0 {
		s.X = float64(natural.Width) / rendered.Width
	}
	if rendered.Height > 0 {
		s.Y = float64(natural.Height) / rendered.Height
	}
	return s
}

// SourceRect maps a selection drawn against the rendered box into
// source-pixel space.
func SourceRect(sel Rect, rendered Rect, natural Size) Rect {
	sc := ScaleFor(rendered, natural)
	return Rect{
		Left:   sel.Left * sc.X,
		Top:    sel.Top * sc.Y,
		Width:  sel.Width * sc.X,
		Height: sel.Height * sc.Y,
	}
}

// Validate rejects degenerate source rectangles.
func Validate(r Rect) error {
	if !finite(r.Left) || !finite(r.Top) || !finite(r.Width) || !finite(r.Height) {
		return ErrInvalidDimensions
	}
	if r.Width <= 0 || r.Height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
