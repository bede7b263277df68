package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	// Additional decoders for photos the standard library cannot read.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultCacheEntries = 16

// ErrNoFetcher is returned for remote sources when no Fetcher is configured.
var ErrNoFetcher = errors.New("no fetcher for remote source")

// Fetcher retrieves the bytes behind URL and service-path sources.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// Loader resolves sources to bytes and decoded rasters. Decoded rasters are
// cached by source so that reverting to a snapshot does not decode again.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger
	cache   *lru.Cache[Source, image.Image]
}

// NewLoader returns a Loader with an LRU cache of the given size.
func NewLoader(fetcher Fetcher, entries int, logger *slog.Logger) (*Loader, error) {
	if entries <= 0 {
		entries = defaultCacheEntries
	}
	cache, err := lru.New[Source, image.Image](entries)
	if err != nil {
		return nil, err
	}
	return &Loader{fetcher: fetcher, logger: logger, cache: cache}, nil
}

// Bytes returns the encoded bytes behind src.
func (l *Loader) Bytes(ctx context.Context, src Source) ([]byte, error) {
	switch src.Kind() {
	case KindEmpty:
		return nil, errors.New("empty source")
	case KindDataURI:
		_, data, err := DecodeDataURI(src)
		return data, err
	case KindURL, KindServicePath:
		if l == nil || l.fetcher == nil {
			return nil, ErrNoFetcher
		}
		return l.fetcher.Fetch(ctx, string(src))
	default:
		data, err := os.ReadFile(string(src))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src, err)
		}
		return data, nil
	}
}

// Image returns the decoded raster for src, honouring EXIF orientation.
func (l *Loader) Image(ctx context.Context, src Source) (image.Image, error) {
	if img, ok := l.cache.Get(src); ok {
		return img, nil
	}
	data, err := l.Bytes(ctx, src)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	l.Remember(src, img)
	return img, nil
}

// Remember stores an already decoded raster for src.
func (l *Loader) Remember(src Source, img image.Image) {
	if l == nil || img == nil {
		return
	}
	if l.cache.Add(src, img) && l.logger != nil {
		l.logger.Debug("raster cache eviction", "entries", l.cache.Len())
	}
}
