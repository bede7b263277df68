package presenter

import (
	"context"
	"image"
	"log/slog"
	"math"
	"runtime/debug"
	"time"

	"github.com/soocke/photo-editor-go/domain/crop"
	"github.com/soocke/photo-editor-go/domain/editor"
	"github.com/soocke/photo-editor-go/domain/photo"
	"github.com/soocke/photo-editor-go/ui/images"
	"github.com/soocke/photo-editor-go/ui/model"
)

// EditorSession is the subset of editor.Session the presenter drives.
type EditorSession interface {
	Version() uint64
	State() editor.ViewState
	Open(ctx context.Context, src photo.Source, fileName string) error
	StartCrop() error
	PointerDown(p crop.Point)
	PointerMove(p crop.Point)
	PointerUp()
	FinishCrop() error
	CancelCrop() error
	Revert(ctx context.Context) error
	StartBrightness() error
	StepBrightness(delta int) error
	ApplyBrightness() error
	CancelBrightness(ctx context.Context) error
	StartFilter() error
	PreviewFilter(ctx context.Context, name string) error
	ApplyFilter(ctx context.Context, name string) error
	CancelFilter(ctx context.Context) error
	Enhance(ctx context.Context) error
	Download(ctx context.Context, dir, name string) (string, error)
}

var _ EditorSession = (*editor.Session)(nil)

// Controls lists which control groups are enabled.
type Controls struct {
	Edit       bool // crop, brightness, filter, enhance and download buttons
	Revert     bool
	Crop       bool // cancel crop
	FinishCrop bool
	Brightness bool
	Filter     bool
	Busy       bool
}

// EditorView renders the photo and the control groups.
type EditorView interface {
	ShowPhoto(img image.Image)
	SetControls(c Controls)
	SetBrightness(percent int)
}

// EditorOptions tune the presenter.
type EditorOptions struct {
	MaxW, MaxH     int
	Timeout        time.Duration
	BrightnessStep int
	DownloadDir    string
}

// EditorPresenter maps view commands to the editor session and renders the
// session on tick when it changed. It also serves as the session's Host:
// the photo is drawn at the origin of its label, so the container and the
// image share one box.
type EditorPresenter struct {
	session EditorSession
	view    EditorView
	display *model.DisplayModel
	busy    *model.BusyModel
	logger  *slog.Logger
	opts    EditorOptions

	// Go runs background work; defaults to a new goroutine.
	Go func(func())
	// Grab captures the screen for OnScreenshot.
	Grab func() (image.Image, error)

	lastVersion uint64
	lastBusy    bool
	rendered    bool
	scaledSrc   image.Image
	scaled      image.Image
}

var _ editor.Host = (*EditorPresenter)(nil)

func NewEditorPresenter(session EditorSession, view EditorView, display *model.DisplayModel, busy *model.BusyModel, logger *slog.Logger, opts EditorOptions) *EditorPresenter {
	if opts.MaxW <= 0 {
		opts.MaxW = 800
	}
	if opts.MaxH <= 0 {
		opts.MaxH = 600
	}
	if opts.BrightnessStep <= 0 {
		opts.BrightnessStep = 10
	}
	if display == nil {
		display = model.NewDisplayModel()
	}
	if busy == nil {
		busy = &model.BusyModel{}
	}
	return &EditorPresenter{
		session: session,
		view:    view,
		display: display,
		busy:    busy,
		logger:  logger,
		opts:    opts,
		Go:      func(f func()) { go f() },
	}
}

// ImageBox returns the on-screen box of the rendered photo.
func (p *EditorPresenter) ImageBox() crop.Rect { return toRect(p.display.Box()) }

// ContainerBox returns the box pointer coordinates are measured against.
func (p *EditorPresenter) ContainerBox() crop.Rect { return toRect(p.display.Box()) }

func toRect(r image.Rectangle) crop.Rect {
	return crop.Rect{Left: float64(r.Min.X), Top: float64(r.Min.Y), Width: float64(r.Dx()), Height: float64(r.Dy())}
}

// Tick renders the session when its version or the busy flag changed.
func (p *EditorPresenter) Tick(now time.Time) {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	busy := p.busy.Busy()
	v := p.session.Version()
	if p.rendered && v == p.lastVersion && busy == p.lastBusy {
		return
	}
	st := p.session.State()
	p.lastVersion, p.lastBusy, p.rendered = st.Version, busy, true
	p.render(st, busy)
}

func (p *EditorPresenter) render(st editor.ViewState, busy bool) {
	if st.Raster == nil {
		p.display.SetSize(0, 0)
		p.view.ShowPhoto(images.Placeholder(p.opts.MaxW/2, p.opts.MaxH/2))
	} else {
		if st.Raster != p.scaledSrc {
			p.scaledSrc = st.Raster
			p.scaled = images.ScaleToFit(st.Raster, p.opts.MaxW, p.opts.MaxH)
		}
		b := p.scaled.Bounds()
		p.display.SetSize(b.Dx(), b.Dy())
		shown := p.scaled
		if st.Mode == editor.ModeCrop && st.Crop.LiveVisible {
			shown = images.SelectionOverlay(p.scaled, pixelBox(st.Crop.Live))
		}
		p.view.ShowPhoto(shown)
	}
	p.view.SetControls(controlsFor(st, busy))
	p.view.SetBrightness(st.Brightness)
}

func pixelBox(r crop.Rect) image.Rectangle {
	x0 := int(math.Round(r.Left))
	y0 := int(math.Round(r.Top))
	return image.Rect(x0, y0, x0+int(math.Round(r.Width)), y0+int(math.Round(r.Height)))
}

func controlsFor(st editor.ViewState, busy bool) Controls {
	loaded := st.Raster != nil
	c := Controls{Busy: busy}
	switch st.Mode {
	case editor.ModeNormal:
		c.Edit = loaded && !busy
		c.Revert = st.Snapshot && !busy
	case editor.ModeCrop:
		c.Crop = true
		c.FinishCrop = st.Crop.HasSelection()
	case editor.ModeBrightness:
		c.Brightness = true
		c.Revert = st.Snapshot
	case editor.ModeFilter:
		c.Filter = !busy
		c.Revert = st.Snapshot && !busy
	}
	return c
}

// --- pointer events, in label coordinates ---

func (p *EditorPresenter) PointerDown(x, y int) {
	p.session.PointerDown(crop.Point{X: float64(x), Y: float64(y)})
}

func (p *EditorPresenter) PointerMove(x, y int) {
	p.session.PointerMove(crop.Point{X: float64(x), Y: float64(y)})
}

func (p *EditorPresenter) PointerUp() { p.session.PointerUp() }

// --- synchronous commands ---

func (p *EditorPresenter) OnStartCrop() {
	p.report("start crop", p.session.StartCrop())
}

func (p *EditorPresenter) OnFinishCrop() {
	p.report("finish crop", p.session.FinishCrop())
}

func (p *EditorPresenter) OnCancelCrop() {
	p.report("cancel crop", p.session.CancelCrop())
}

func (p *EditorPresenter) OnStartBrightness() {
	p.report("start brightness", p.session.StartBrightness())
}

func (p *EditorPresenter) OnApplyBrightness() {
	p.report("apply brightness", p.session.ApplyBrightness())
}

func (p *EditorPresenter) OnStartFilter() {
	p.report("start filter", p.session.StartFilter())
}

func (p *EditorPresenter) OnBrighter() {
	p.report("brightness", p.session.StepBrightness(p.opts.BrightnessStep))
}

func (p *EditorPresenter) OnDarker() {
	p.report("brightness", p.session.StepBrightness(-p.opts.BrightnessStep))
}

// --- background commands ---

func (p *EditorPresenter) OnRevert() { p.run("revert", p.session.Revert) }

func (p *EditorPresenter) OnCancelBrightness() {
	p.run("cancel brightness", p.session.CancelBrightness)
}

func (p *EditorPresenter) OnCancelFilter() { p.run("cancel filter", p.session.CancelFilter) }

func (p *EditorPresenter) OnEnhance() { p.run("enhance", p.session.Enhance) }

func (p *EditorPresenter) OnPreviewFilter(name string) {
	p.run("preview filter", func(ctx context.Context) error { return p.session.PreviewFilter(ctx, name) })
}

func (p *EditorPresenter) OnApplyFilter(name string) {
	p.run("apply filter", func(ctx context.Context) error { return p.session.ApplyFilter(ctx, name) })
}

// OnOpen loads a photo from a file path, URL or service path.
func (p *EditorPresenter) OnOpen(ref, fileName string) {
	if ref == "" {
		return
	}
	p.run("open", func(ctx context.Context) error { return p.session.Open(ctx, photo.Source(ref), fileName) })
}

// OnScreenshot captures the screen and opens it as the photo.
func (p *EditorPresenter) OnScreenshot() {
	if p.Grab == nil {
		return
	}
	p.run("screenshot", func(ctx context.Context) error {
		img, err := p.Grab()
		if err != nil {
			return err
		}
		return p.session.Open(ctx, photo.EncodeDataURI(images.EncodePNG(img)), "")
	})
}

// OnDownload writes the photo into the configured download directory.
func (p *EditorPresenter) OnDownload(name string) {
	p.run("download", func(ctx context.Context) error {
		path, err := p.session.Download(ctx, p.opts.DownloadDir, name)
		if err == nil && p.logger != nil {
			p.logger.Debug("download complete", "path", path)
		}
		return err
	})
}

func (p *EditorPresenter) run(op string, fn func(ctx context.Context) error) {
	p.busy.Begin()
	p.Go(func() {
		defer p.busy.End()
		defer recoverLog(p.logger, op+" panic")
		ctx := context.Background()
		if p.opts.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
			defer cancel()
		}
		p.report(op, fn(ctx))
	})
}

// report logs command errors. The session already surfaced them as status.
func (p *EditorPresenter) report(op string, err error) {
	if err != nil && p.logger != nil {
		p.logger.Debug("command failed", "op", op, "error", err)
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}
