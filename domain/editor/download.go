package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Download writes the current photo into dir as name. The base of name is
// used, falling back to the configured download name. It returns the path
// written.
func (s *Session) Download(ctx context.Context, dir, name string) (string, error) {
	s.mu.Lock()
	src := s.photo.Source()
	fallback := s.opts.DownloadName
	s.mu.Unlock()
	if src == "" {
		s.notify(msgNoPhoto)
		return "", ErrNoPhoto
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = fallback
	}
	data, err := s.sources.Bytes(ctx, src)
	if err != nil {
		s.notify("Could not download photo.")
		return "", fmt.Errorf("download: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.notify("Could not download photo.")
		return "", fmt.Errorf("download: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.notify("Could not download photo.")
		return "", fmt.Errorf("download: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("photo downloaded", "path", path, "size", humanize.Bytes(uint64(len(data))))
	}
	s.notify("Photo downloaded!")
	return path, nil
}
