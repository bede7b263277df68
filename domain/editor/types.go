package editor

import (
	"context"
	"errors"
	"image"

	"github.com/soocke/photo-editor-go/domain/crop"
	"github.com/soocke/photo-editor-go/domain/photo"
)

// EditMode enumerates the mutually exclusive editing modes.
type EditMode int

const (
	ModeNormal EditMode = iota
	ModeCrop
	ModeBrightness
	ModeFilter
)

func (m EditMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCrop:
		return "crop"
	case ModeBrightness:
		return "brightness"
	case ModeFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// DefaultDownloadName is used when Download is called without a name.
const DefaultDownloadName = "edited-photo.png"

var (
	// ErrInvalidMode reports an operation not allowed in the current mode.
	ErrInvalidMode = errors.New("operation not allowed in current mode")
	// ErrNoSelection reports a finish-crop request without a committed selection.
	ErrNoSelection = errors.New("no crop selection")
	// ErrNoPhoto reports an operation that needs a loaded photo.
	ErrNoPhoto = errors.New("no photo loaded")
	// ErrNotOnService reports a remote operation on a photo the image service does not know.
	ErrNotOnService = errors.New("photo is not stored on the image service")
)

// Host exposes the rendered geometry of the photo and of the container the
// pointer coordinates are measured against. Both are queried at the moment
// they are needed and never cached by the session.
type Host interface {
	ImageBox() crop.Rect
	ContainerBox() crop.Rect
}

// Remote is the image-processing service.
type Remote interface {
	ApplyFilter(ctx context.Context, filterName, fileName string) (string, error)
	PreviewFilter(ctx context.Context, filterName, fileName string) (string, error)
	Enhance(ctx context.Context, fileName string) (string, error)
}

// Sources resolves photo sources to bytes and rasters.
type Sources interface {
	Image(ctx context.Context, src photo.Source) (image.Image, error)
	Bytes(ctx context.Context, src photo.Source) ([]byte, error)
	Remember(src photo.Source, img image.Image)
}

// ModeListener is called after every edit mode transition.
type ModeListener func(prev, next EditMode)

// StatusSink receives user-facing status messages.
type StatusSink func(msg string)

// Options tune a Session.
type Options struct {
	MinSelection float64
	DownloadName string
}

// ViewState is a consistent copy of what the UI needs to render.
type ViewState struct {
	Version    uint64
	Mode       EditMode
	Crop       crop.State
	Source     photo.Source
	Raster     image.Image // preview when one is active, the photo otherwise
	Previewing bool
	Brightness int
	FilterName string
	Snapshot   bool
}
