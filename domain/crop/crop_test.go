package crop

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestRectFromPoints_AllDirections(t *testing.T) {
	anchor := Point{X: 50, Y: 50}
	ends := []Point{{80, 90}, {20, 90}, {80, 10}, {20, 10}, {50, 50}}
	for _, e := range ends {
		r := RectFromPoints(anchor, e)
		if r.Width < 0 || r.Height < 0 {
			t.Fatalf("negative size for end %v: %+v", e, r)
		}
		if r.Left > anchor.X || r.Top > anchor.Y {
			t.Fatalf("origin must not exceed anchor for end %v: %+v", e, r)
		}
	}
	r := RectFromPoints(anchor, Point{X: 20, Y: 10})
	if r != (Rect{Left: 20, Top: 10, Width: 30, Height: 40}) {
		t.Fatalf("unexpected up-left rect %+v", r)
	}
}

func TestDragStart_IgnoredOutsideCropMode(t *testing.T) {
	s := DragStart(State{}, Point{X: 5, Y: 5}, Rect{})
	if s.Dragging || s.LiveVisible {
		t.Fatalf("drag must not start when inactive: %+v", s)
	}
	s = DragMove(s, Point{X: 50, Y: 50}, Rect{})
	if s.Live != (Rect{}) {
		t.Fatalf("move must be a no-op when not dragging: %+v", s.Live)
	}
}

func TestDrag_AnchorRelativeToContainer(t *testing.T) {
	container := Rect{Left: 100, Top: 40, Width: 500, Height: 400}
	s := DragStart(Enter(State{}), Point{X: 150, Y: 90}, container)
	if s.Anchor != (Point{X: 50, Y: 50}) {
		t.Fatalf("anchor not container-relative: %+v", s.Anchor)
	}
	if s.Live != (Rect{Left: 50, Top: 50}) {
		t.Fatalf("expected zero-size live rect at anchor, got %+v", s.Live)
	}
	s = DragMove(s, Point{X: 130, Y: 60}, container)
	if s.Live != (Rect{Left: 30, Top: 20, Width: 20, Height: 30}) {
		t.Fatalf("unexpected live rect %+v", s.Live)
	}
}

func TestDragEnd_TooSmallDiscardsSelection(t *testing.T) {
	box := Rect{Width: 400, Height: 300}
	s := DragStart(Enter(State{}), Point{X: 10, Y: 10}, box)
	s = DragMove(s, Point{X: 15, Y: 30}, box) // 5x20
	s = DragEnd(s, box, box, DefaultMinSelection)
	if s.HasSelection() {
		t.Fatalf("5x20 drag must not commit: %+v", s.Selection)
	}
	if s.Notice != NoticeTooSmall {
		t.Fatalf("expected too-small notice, got %q", s.Notice)
	}
	if s.Dragging || s.LiveVisible {
		t.Fatalf("drag state must be cleared: %+v", s)
	}
}

func TestDragEnd_ThresholdIsExclusive(t *testing.T) {
	box := Rect{Width: 400, Height: 300}
	s := DragStart(Enter(State{}), Point{X: 0, Y: 0}, box)
	s = DragMove(s, Point{X: 10, Y: 50}, box)
	if s = DragEnd(s, box, box, DefaultMinSelection); s.HasSelection() {
		t.Fatalf("width of exactly 10 must not commit")
	}
	s = DragStart(s, Point{X: 0, Y: 0}, box)
	s = DragMove(s, Point{X: 11, Y: 11}, box)
	if s = DragEnd(s, box, box, DefaultMinSelection); !s.HasSelection() {
		t.Fatalf("11x11 must commit")
	}
}

func TestDragEnd_SelectionRelativeToImage(t *testing.T) {
	container := Rect{Left: 0, Top: 0, Width: 600, Height: 400}
	img := Rect{Left: 100, Top: 50, Width: 400, Height: 300}
	s := DragStart(Enter(State{}), Point{X: 150, Y: 100}, container)
	s = DragMove(s, Point{X: 250, Y: 180}, container)
	s = DragEnd(s, container, img, DefaultMinSelection)
	if !s.HasSelection() {
		t.Fatalf("expected selection")
	}
	want := Rect{Left: 50, Top: 50, Width: 100, Height: 80}
	if *s.Selection != want {
		t.Fatalf("selection = %+v, want %+v", *s.Selection, want)
	}
}

func TestNewDragDiscardsSelection(t *testing.T) {
	box := Rect{Width: 400, Height: 300}
	s := DragStart(Enter(State{}), Point{X: 0, Y: 0}, box)
	s = DragMove(s, Point{X: 50, Y: 50}, box)
	s = DragEnd(s, box, box, DefaultMinSelection)
	if !s.HasSelection() {
		t.Fatalf("expected selection")
	}
	s = DragStart(s, Point{X: 5, Y: 5}, box)
	if s.HasSelection() {
		t.Fatalf("new drag must discard the committed selection")
	}
}

func TestCancel_ClearsEverything(t *testing.T) {
	box := Rect{Width: 400, Height: 300}
	s := DragStart(Enter(State{}), Point{X: 0, Y: 0}, box)
	s = Cancel(s)
	if s.Active || s.Dragging || s.HasSelection() || s.LiveVisible {
		t.Fatalf("cancel left state behind: %+v", s)
	}
	if s.Notice != NoticeCancelled {
		t.Fatalf("unexpected notice %q", s.Notice)
	}
	if got := Cancel(State{Notice: "x"}); got.Notice != "x" {
		t.Fatalf("cancel outside crop mode must be ignored")
	}
}

func TestSourceRect_HalfScale(t *testing.T) {
	rendered := Rect{Width: 200, Height: 150}
	r := SourceRect(Rect{Left: 10, Top: 10, Width: 20, Height: 20}, rendered, Size{Width: 400, Height: 300})
	if r != (Rect{Left: 20, Top: 20, Width: 40, Height: 40}) {
		t.Fatalf("unexpected source rect %+v", r)
	}
}

func TestSourceRect_ZeroRenderedWidthFailsValidation(t *testing.T) {
	r := SourceRect(Rect{Left: 10, Top: 10, Width: 20, Height: 20}, Rect{Width: 0, Height: 300}, Size{Width: 800, Height: 600})
	if err := Validate(r); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestEndToEnd_SelectionAndSourceRegion(t *testing.T) {
	container := Rect{Width: 400, Height: 300}
	img := Rect{Width: 400, Height: 300}
	s := Enter(State{})
	s = DragStart(s, Point{X: 50, Y: 50}, container)
	s = DragMove(s, Point{X: 150, Y: 150}, container)
	s = DragEnd(s, container, img, DefaultMinSelection)
	if s.Selection == nil || *s.Selection != (Rect{Left: 50, Top: 50, Width: 100, Height: 100}) {
		t.Fatalf("unexpected selection %+v", s.Selection)
	}
	src := SourceRect(*s.Selection, img, Size{Width: 800, Height: 600})
	if src != (Rect{Left: 100, Top: 100, Width: 200, Height: 200}) {
		t.Fatalf("unexpected source region %+v", src)
	}
	raster := image.NewNRGBA(image.Rect(0, 0, 800, 600))
	raster.SetNRGBA(100, 100, color.NRGBA{R: 255, A: 255})
	raster.SetNRGBA(299, 299, color.NRGBA{G: 255, A: 255})
	out, err := Export(raster, src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
		t.Fatalf("expected 200x200, got %v", out.Bounds())
	}
	if c := out.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Fatalf("top-left pixel not copied: %+v", c)
	}
	if c := out.NRGBAAt(199, 199); c.G != 255 || c.A != 255 {
		t.Fatalf("bottom-right pixel not copied: %+v", c)
	}
}

func TestExport_OutsideSourceIsTransparent(t *testing.T) {
	raster := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			raster.SetNRGBA(x, y, color.NRGBA{B: 200, A: 255})
		}
	}
	out, err := Export(raster, Rect{Left: 10, Top: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Fatalf("surface must keep requested size, got %v", out.Bounds())
	}
	if c := out.NRGBAAt(5, 5); c.B != 200 {
		t.Fatalf("inside pixel lost: %+v", c)
	}
	if c := out.NRGBAAt(15, 15); c.A != 0 {
		t.Fatalf("outside pixel must be transparent: %+v", c)
	}
}

func TestExport_RejectsSubPixelSurface(t *testing.T) {
	raster := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	if _, err := Export(raster, Rect{Width: 0.5, Height: 4}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Export(nil, Rect{Width: 4, Height: 4}); !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport for nil source, got %v", err)
	}
}

func TestEncodePNG_Decodes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width != 3 || cfg.Height != 2 {
		t.Fatalf("unexpected png config %+v err=%v", cfg, err)
	}
}
