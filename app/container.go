package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/photo-editor-go/capture"
	"github.com/soocke/photo-editor-go/config"
	"github.com/soocke/photo-editor-go/domain/editor"
	"github.com/soocke/photo-editor-go/domain/filter"
	"github.com/soocke/photo-editor-go/domain/photo"
	"github.com/soocke/photo-editor-go/ui/model"
	"github.com/soocke/photo-editor-go/ui/presenter"
	"github.com/soocke/photo-editor-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Status   *model.StatusModel
	Display  *model.DisplayModel
	Busy     *model.BusyModel
	Service  *filter.Client
	Loader   *photo.Loader
	Session  *editor.Session
	RootView *view.RootView
	UI       view.UI

	// Presenters
	EditorPresenter *presenter.EditorPresenter
	ModePresenter   *presenter.ModePresenter
	StatusPresenter *presenter.StatusPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components. No widgets are created here.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	_ = cfg.Validate()
	c := &AppContainer{Config: cfg, Logger: logger}
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	svc, err := filter.NewClient(cfg.ServiceURL, timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("image service: %w", err)
	}
	c.Service = svc
	if c.Loader, err = photo.NewLoader(svc, cfg.CacheEntries, logger); err != nil {
		return nil, fmt.Errorf("photo cache: %w", err)
	}

	c.Status = model.NewStatusModel(time.Duration(cfg.StatusSeconds) * time.Second)
	c.Display = model.NewDisplayModel()
	c.Busy = &model.BusyModel{}

	// View; widgets are built by the app after Tk is ready.
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, c.UI)
	c.ModePresenter = presenter.NewModePresenter(c.UI)
	c.Session = editor.New(logger, nil, svc, c.Loader, c.StatusPresenter.Post, editor.Options{
		MinSelection: cfg.MinSelectionPx,
		DownloadName: cfg.DownloadName,
	})
	c.Session.AddListener(c.ModePresenter.OnMode)
	c.EditorPresenter = presenter.NewEditorPresenter(c.Session, c.UI, c.Display, c.Busy, logger, presenter.EditorOptions{
		MaxW:           cfg.DisplayMaxW,
		MaxH:           cfg.DisplayMaxH,
		Timeout:        timeout,
		BrightnessStep: cfg.BrightnessStep,
		DownloadDir:    cfg.DownloadDir,
	})
	c.EditorPresenter.Grab = capture.Grab
	c.Session.SetHost(c.EditorPresenter)
	return c, nil
}

// Handlers maps toolbar actions to the editor presenter.
func (c *AppContainer) Handlers(exit func()) view.Handlers {
	p := c.EditorPresenter
	return view.Handlers{
		Open:             p.OnOpen,
		Screenshot:       p.OnScreenshot,
		StartCrop:        p.OnStartCrop,
		FinishCrop:       p.OnFinishCrop,
		CancelCrop:       p.OnCancelCrop,
		Revert:           p.OnRevert,
		StartBrightness:  p.OnStartBrightness,
		Brighter:         p.OnBrighter,
		Darker:           p.OnDarker,
		ApplyBrightness:  p.OnApplyBrightness,
		CancelBrightness: p.OnCancelBrightness,
		StartFilter:      p.OnStartFilter,
		PreviewFilter:    p.OnPreviewFilter,
		ApplyFilter:      p.OnApplyFilter,
		CancelFilter:     p.OnCancelFilter,
		Enhance:          p.OnEnhance,
		Download:         p.OnDownload,
		Exit:             exit,
	}
}
