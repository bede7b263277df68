package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/soocke/photo-editor-go/domain/crop"
	"github.com/soocke/photo-editor-go/domain/filter"
	"github.com/soocke/photo-editor-go/domain/photo"
)

// Status messages shared by several operations.
const (
	msgLoaded       = "Photo loaded. Ready for editing."
	msgBusy         = "Finish or cancel the current edit first."
	msgNoPhoto      = "No photo loaded."
	msgNeedArea     = "Please select an area to crop first!"
	msgInvalidCrop  = "Invalid crop dimensions!"
	msgCropFailed   = "Error cropping image. Please try again."
	msgReverted     = "Reverted to original image."
	msgRevertFailed = "Could not restore the original image."
)

// Session is one editor instance: a single photo, its edit mode, the crop
// tool state and the snapshot taken when the current edit mode was entered.
// Methods are safe for concurrent use; listeners and the status sink run
// after the session lock is released.
type Session struct {
	mu      sync.Mutex
	logger  *slog.Logger
	host    Host
	remote  Remote
	sources Sources
	status  StatusSink
	opts    Options

	photo        photo.Photo
	fileName     string
	mode         EditMode
	crop         crop.State
	snapshot     photo.Source
	snapshotName string
	brightness   int
	preview      image.Image
	filterName   string
	version      uint64
	listeners    []ModeListener
}

// events collects notifications produced while the lock is held.
type events struct {
	status      string
	transitions [][2]EditMode
	listeners   []ModeListener
	sink        StatusSink
}

// New returns a session in normal mode with no photo loaded.
func New(logger *slog.Logger, host Host, remote Remote, sources Sources, status StatusSink, opts Options) *Session {
	if opts.MinSelection <= 0 {
		opts.MinSelection = crop.DefaultMinSelection
	}
	if opts.DownloadName == "" {
		opts.DownloadName = DefaultDownloadName
	}
	return &Session{
		logger:     logger,
		host:       host,
		remote:     remote,
		sources:    sources,
		status:     status,
		opts:       opts,
		brightness: filter.BrightnessNeutral,
	}
}

// SetHost attaches the rendering host. Views are usually built after the session.
func (s *Session) SetHost(h Host) {
	s.mu.Lock()
	s.host = h
	s.mu.Unlock()
}

// AddListener registers a mode transition listener.
func (s *Session) AddListener(l ModeListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Mode returns the current edit mode.
func (s *Session) Mode() EditMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Version increases on every visible change.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// State returns a copy of the renderable state.
func (s *Session) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := ViewState{
		Version:    s.version,
		Mode:       s.mode,
		Crop:       s.crop,
		Source:     s.photo.Source(),
		Raster:     s.photo.Raster(),
		Brightness: s.brightness,
		FilterName: s.filterName,
		Snapshot:   s.snapshot != "",
	}
	if s.crop.Selection != nil {
		sel := *s.crop.Selection
		v.Crop.Selection = &sel
	}
	if s.preview != nil {
		v.Raster = s.preview
		v.Previewing = true
	}
	return v
}

// Open loads src as the photo being edited. fileName is the name the image
// service knows the photo by; when empty it is derived from src. Any edit in
// progress is abandoned and the snapshot is dropped.
func (s *Session) Open(ctx context.Context, src photo.Source, fileName string) error {
	img, err := s.sources.Image(ctx, src)
	if err != nil {
		s.notify("Could not load photo.")
		return fmt.Errorf("open photo: %w", err)
	}
	if fileName == "" && src.Kind() != photo.KindDataURI {
		fileName = filepath.Base(string(src))
	}
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photo.Set(src, img)
	s.fileName = fileName
	s.snapshot = ""
	s.snapshotName = ""
	s.preview = nil
	s.crop = crop.State{}
	s.brightness = filter.BrightnessNeutral
	s.setMode(ModeNormal, &ev)
	ev.status = msgLoaded
	s.changed()
	if s.logger != nil {
		b := img.Bounds()
		s.logger.Info("photo opened", "source", src.String(), "kind", src.Kind().String(), "width", b.Dx(), "height", b.Dy())
	}
	return nil
}

// StartCrop enters crop mode from normal mode and snapshots the photo.
func (s *Session) StartCrop() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enterLocked(ModeCrop, &ev); err != nil {
		return err
	}
	s.crop = crop.Enter(s.crop)
	ev.status = s.crop.Notice
	return nil
}

// PointerDown starts a drag at p. Ignored outside crop mode.
func (s *Session) PointerDown(p crop.Point) {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCrop || s.host == nil {
		return
	}
	s.crop = crop.DragStart(s.crop, p, s.host.ContainerBox())
	ev.status = s.crop.Notice
	s.changed()
}

// PointerMove updates the live rectangle while a drag is in progress.
func (s *Session) PointerMove(p crop.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCrop || !s.crop.Dragging || s.host == nil {
		return
	}
	s.crop = crop.DragMove(s.crop, p, s.host.ContainerBox())
	s.changed()
}

// PointerUp ends the drag, committing a selection when it is large enough.
func (s *Session) PointerUp() {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCrop || !s.crop.Dragging || s.host == nil {
		return
	}
	s.crop = crop.DragEnd(s.crop, s.host.ContainerBox(), s.host.ImageBox(), s.opts.MinSelection)
	ev.status = s.crop.Notice
	s.changed()
}

// CancelCrop leaves crop mode without touching the photo.
func (s *Session) CancelCrop() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCrop {
		return ErrInvalidMode
	}
	s.crop = crop.Cancel(s.crop)
	ev.status = s.crop.Notice
	s.setMode(ModeNormal, &ev)
	s.changed()
	return nil
}

// FinishCrop maps the committed selection to source pixels using the
// rendered geometry as it is now, replaces the photo with the cropped PNG and
// returns to normal mode. On failure the mode and selection are unchanged.
func (s *Session) FinishCrop() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCrop {
		return ErrInvalidMode
	}
	if s.crop.Selection == nil {
		ev.status = msgNeedArea
		return ErrNoSelection
	}
	var rendered crop.Rect
	if s.host != nil {
		rendered = s.host.ImageBox()
	}
	region := crop.SourceRect(*s.crop.Selection, rendered, s.photo.NaturalSize())
	if err := crop.Validate(region); err != nil {
		ev.status = msgInvalidCrop
		return err
	}
	out, err := crop.Export(s.photo.Raster(), region)
	if err == nil {
		var data []byte
		if data, err = crop.EncodePNG(out); err == nil {
			src := photo.EncodeDataURI(data)
			s.sources.Remember(src, out)
			s.photo.Set(src, out)
			s.fileName = ""
		}
	}
	if err != nil {
		if errors.Is(err, crop.ErrInvalidDimensions) {
			ev.status = msgInvalidCrop
		} else {
			ev.status = msgCropFailed
		}
		if s.logger != nil {
			s.logger.Error("crop failed", "error", err, "region", region)
		}
		return err
	}
	s.crop = crop.Leave(s.crop)
	ev.status = s.crop.Notice
	s.setMode(ModeNormal, &ev)
	s.changed()
	if s.logger != nil {
		b := out.Bounds()
		s.logger.Info("photo cropped", "x", region.Left, "y", region.Top, "width", b.Dx(), "height", b.Dy())
	}
	return nil
}

// Revert restores the photo from the most recent snapshot. Without a
// snapshot it does nothing. The edit mode is not changed.
func (s *Session) Revert(ctx context.Context) error {
	s.mu.Lock()
	snap, snapName := s.snapshot, s.snapshotName
	s.mu.Unlock()
	if snap == "" {
		return nil
	}
	img, err := s.sources.Image(ctx, snap)
	if err != nil {
		s.notify(msgRevertFailed)
		return fmt.Errorf("revert: %w", err)
	}
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photo.Set(snap, img)
	s.fileName = snapName
	s.refreshPreviewLocked()
	ev.status = msgReverted
	s.changed()
	return nil
}

// enterLocked moves from normal mode into next and takes the snapshot.
func (s *Session) enterLocked(next EditMode, ev *events) error {
	if !s.photo.Loaded() {
		ev.status = msgNoPhoto
		return ErrNoPhoto
	}
	if s.mode != ModeNormal {
		ev.status = msgBusy
		return ErrInvalidMode
	}
	s.snapshot = s.photo.Source()
	s.snapshotName = s.fileName
	s.preview = nil
	s.setMode(next, ev)
	s.changed()
	return nil
}

// restoreSnapshotLocked puts the snapshot back when the photo has moved on.
func (s *Session) restoreSnapshotLocked(ctx context.Context) error {
	if s.snapshot == "" || s.snapshot == s.photo.Source() {
		return nil
	}
	img, err := s.sources.Image(ctx, s.snapshot)
	if err != nil {
		return err
	}
	s.photo.Set(s.snapshot, img)
	s.fileName = s.snapshotName
	return nil
}

func (s *Session) refreshPreviewLocked() {
	switch s.mode {
	case ModeBrightness:
		if s.brightness != filter.BrightnessNeutral {
			s.preview = filter.Brightness(s.photo.Raster(), s.brightness)
		} else {
			s.preview = nil
		}
	default:
		s.preview = nil
	}
}

func (s *Session) setMode(next EditMode, ev *events) {
	prev := s.mode
	if prev == next {
		return
	}
	s.mode = next
	ev.transitions = append(ev.transitions, [2]EditMode{prev, next})
	if s.logger != nil {
		s.logger.Debug("edit mode transition", "from", prev.String(), "to", next.String())
	}
}

func (s *Session) changed() { s.version++ }

// publish runs after the lock is released.
func (s *Session) publish(ev *events) {
	if ev.status == "" && len(ev.transitions) == 0 {
		return
	}
	s.mu.Lock()
	ev.listeners = append(ev.listeners[:0], s.listeners...)
	ev.sink = s.status
	s.mu.Unlock()
	if ev.status != "" && ev.sink != nil {
		ev.sink(ev.status)
	}
	for _, t := range ev.transitions {
		for _, l := range ev.listeners {
			l(t[0], t[1])
		}
	}
}

func (s *Session) notify(msg string) {
	s.publish(&events{status: msg})
}

// encodeSource encodes img as a PNG data URI and primes the raster cache.
func (s *Session) encodeSource(img image.Image) (photo.Source, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	src := photo.EncodeDataURI(buf.Bytes())
	s.sources.Remember(src, img)
	return src, nil
}
