package view

import (
	"image"
	"log/slog"

	"github.com/soocke/photo-editor-go/config"
	"github.com/soocke/photo-editor-go/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Status  StatusBar
	Photo   PhotoPreview
	Toolbar Toolbar
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	presenter.EditorView
	presenter.ModeView
	presenter.StatusView
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions; pointer
// callbacks receive coordinates relative to the photo.
func (rv *RootView) Build(h Handlers, down, move func(x, y int), up func()) {
	if rv == nil {
		return
	}
	var filters []string
	maxW, maxH := 800, 600
	if rv.cfg != nil {
		filters = rv.cfg.Filters
		maxW, maxH = rv.cfg.DisplayMaxW, rv.cfg.DisplayMaxH
	}

	// Row 0: mode, brightness and status labels
	statusFrame := Frame()
	Grid(statusFrame, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Status = NewStatusBar(statusFrame, 0)

	// Row 1: photo and toolbar
	rv.Photo = NewPhotoPreview(1, maxW/2, maxH/2)
	rv.Photo.BindPointer(down, move, up)

	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.Toolbar = NewToolbar(filters, rv.logger)
	rv.Toolbar.Build(btnFrame, h)
}

// ShowPhoto proxies to the photo preview.
func (rv *RootView) ShowPhoto(img image.Image) {
	if rv != nil && rv.Photo != nil {
		rv.Photo.ShowPhoto(img)
	}
}

// SetControls enables the toolbar groups.
func (rv *RootView) SetControls(c presenter.Controls) {
	if rv != nil && rv.Toolbar != nil {
		rv.Toolbar.SetControls(c)
	}
}

// SetBrightness updates the brightness label.
func (rv *RootView) SetBrightness(percent int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetBrightness(percent)
	}
}

// SetModeLabel updates the mode label text.
func (rv *RootView) SetModeLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetMode(text)
	}
}

// SetStatus updates the status message.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}
