package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/photo-editor-go/debug"
	"github.com/soocke/photo-editor-go/ui/presenter"
	"github.com/soocke/photo-editor-go/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	width   int
	height  int
	afterID string
	done    chan struct{}
}

// NewApp prepares the main window for the container's editor.
func NewApp(title string, width, height int, c *AppContainer) *app {
	a := &app{c: c, logger: c.Logger, width: width, height: height, done: make(chan struct{})}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the widgets, opens the configured photo and runs the Tk loop.
func (a *app) Start() {
	c := a.c
	ed := c.EditorPresenter
	theme.InitStyles(c.Config.DarkMode)
	c.RootView.Build(c.Handlers(a.exitHandler), ed.PointerDown, ed.PointerMove, ed.PointerUp)
	c.Loop = presenter.NewLoop(ed, c.ModePresenter, c.StatusPresenter, a.scheduleUpdate)

	if c.Config.Debug {
		debug.StartGoroutineLogger(5*time.Second, a.logger, a.done)
		debug.StartMemLogger(5*time.Second, a.logger, a.done)
	}
	if c.Config.ImagePath != "" {
		ed.OnOpen(c.Config.ImagePath, c.Config.FileName)
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	select {
	case <-a.done:
	default:
		close(a.done)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
