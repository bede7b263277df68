package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/soocke/photo-editor-go/domain/filter"
	"github.com/soocke/photo-editor-go/domain/photo"
)

// StartBrightness enters brightness mode with a neutral adjustment.
func (s *Session) StartBrightness() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enterLocked(ModeBrightness, &ev); err != nil {
		return err
	}
	s.brightness = filter.BrightnessNeutral
	ev.status = "Adjust brightness, then apply or cancel."
	return nil
}

// SetBrightness updates the live preview. The photo source is not changed
// until ApplyBrightness.
func (s *Session) SetBrightness(percent int) error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeBrightness {
		return ErrInvalidMode
	}
	s.brightness = filter.ClampBrightness(percent)
	s.refreshPreviewLocked()
	ev.status = fmt.Sprintf("Brightness: %d%%", s.brightness)
	s.changed()
	return nil
}

// StepBrightness changes the brightness by delta percent.
func (s *Session) StepBrightness(delta int) error {
	s.mu.Lock()
	cur := s.brightness
	s.mu.Unlock()
	return s.SetBrightness(cur + delta)
}

// ApplyBrightness bakes the adjustment into the photo and returns to normal mode.
func (s *Session) ApplyBrightness() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeBrightness {
		return ErrInvalidMode
	}
	if s.brightness != filter.BrightnessNeutral {
		out := filter.Brightness(s.photo.Raster(), s.brightness)
		src, err := s.encodeSource(out)
		if err != nil {
			ev.status = "Error applying brightness."
			if s.logger != nil {
				s.logger.Error("brightness apply failed", "error", err)
			}
			return err
		}
		s.photo.Set(src, out)
		s.fileName = ""
	}
	s.preview = nil
	s.brightness = filter.BrightnessNeutral
	s.setMode(ModeNormal, &ev)
	ev.status = "Brightness applied."
	s.changed()
	return nil
}

// CancelBrightness drops the preview and restores the snapshot.
func (s *Session) CancelBrightness(ctx context.Context) error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeBrightness {
		return ErrInvalidMode
	}
	s.preview = nil
	s.brightness = filter.BrightnessNeutral
	if err := s.restoreSnapshotLocked(ctx); err != nil && s.logger != nil {
		s.logger.Error("restore snapshot", "error", err)
	}
	s.setMode(ModeNormal, &ev)
	ev.status = "Brightness adjustment cancelled."
	s.changed()
	return nil
}

// StartFilter enters filter mode.
func (s *Session) StartFilter() error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enterLocked(ModeFilter, &ev); err != nil {
		return err
	}
	s.filterName = ""
	ev.status = "Choose a filter to preview or apply."
	return nil
}

// PreviewFilter asks the service for a preview and shows it without
// changing the photo source.
func (s *Session) PreviewFilter(ctx context.Context, name string) error {
	fileName, err := s.requireMode(ModeFilter)
	if err != nil {
		return err
	}
	s.notify("Loading filter preview...")
	path, err := s.remote.PreviewFilter(ctx, name, fileName)
	img := s.fetchResult(ctx, path, &err)
	if err != nil {
		s.remoteFailed("preview filter", "Error previewing filter", err)
		return err
	}
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeFilter {
		return nil
	}
	s.preview = img
	s.filterName = name
	ev.status = fmt.Sprintf("Previewing filter: %s", name)
	s.changed()
	return nil
}

// ApplyFilter asks the service to apply the filter and swaps the photo to
// the result. Concurrent remote calls resolve last-writer-wins.
func (s *Session) ApplyFilter(ctx context.Context, name string) error {
	fileName, err := s.requireMode(ModeFilter)
	if err != nil {
		return err
	}
	s.notify("Applying filter...")
	path, err := s.remote.ApplyFilter(ctx, name, fileName)
	img := s.fetchResult(ctx, path, &err)
	if err != nil {
		s.remoteFailed("apply filter", "Error applying filter", err)
		return err
	}
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setServiceResultLocked(path, img)
	s.preview = nil
	s.filterName = name
	if s.mode == ModeFilter {
		s.setMode(ModeNormal, &ev)
	}
	ev.status = fmt.Sprintf("Filter applied: %s", name)
	s.changed()
	return nil
}

// CancelFilter drops any preview and restores the snapshot.
func (s *Session) CancelFilter(ctx context.Context) error {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeFilter {
		return ErrInvalidMode
	}
	s.preview = nil
	s.filterName = ""
	if err := s.restoreSnapshotLocked(ctx); err != nil && s.logger != nil {
		s.logger.Error("restore snapshot", "error", err)
	}
	s.setMode(ModeNormal, &ev)
	ev.status = "Filter cancelled."
	s.changed()
	return nil
}

// Enhance runs the remote AI enhancement on the photo. Only valid in normal mode.
func (s *Session) Enhance(ctx context.Context) error {
	fileName, err := s.requireMode(ModeNormal)
	if err != nil {
		return err
	}
	s.notify("Enhancing image with AI...")
	path, err := s.remote.Enhance(ctx, fileName)
	img := s.fetchResult(ctx, path, &err)
	if err != nil {
		s.remoteFailed("enhance image", "Error enhancing image", err)
		return err
	}
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setServiceResultLocked(path, img)
	ev.status = "Image enhanced!"
	s.changed()
	return nil
}

// requireMode checks the mode and a loaded photo, returning the service file name.
func (s *Session) requireMode(want EditMode) (string, error) {
	var ev events
	defer s.publish(&ev)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.photo.Loaded() {
		ev.status = msgNoPhoto
		return "", ErrNoPhoto
	}
	if s.mode != want {
		ev.status = msgBusy
		return "", ErrInvalidMode
	}
	if s.remote == nil || s.fileName == "" {
		ev.status = "Photo is not stored on the image service."
		return "", ErrNotOnService
	}
	return s.fileName, nil
}

// fetchResult loads the raster behind a returned service path unless an
// earlier step already failed.
func (s *Session) fetchResult(ctx context.Context, path string, errp *error) image.Image {
	if *errp != nil {
		return nil
	}
	img, err := s.sources.Image(ctx, photo.Source(path))
	*errp = err
	return img
}

// setServiceResultLocked swaps the photo to a service result. Later remote
// operations address the result by its base name.
func (s *Session) setServiceResultLocked(path string, img image.Image) {
	s.photo.Set(photo.Source(path), img)
	s.fileName = filepath.Base(path)
}

func (s *Session) remoteFailed(op, prefix string, err error) {
	msg := err.Error()
	var re *filter.RemoteError
	if errors.As(err, &re) && re.Message != "" {
		msg = re.Message
	}
	if s.logger != nil {
		s.logger.Error("image service", "op", op, "error", err)
	}
	s.notify(prefix + ": " + msg)
}
