package photo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

type countingFetcher struct {
	data  []byte
	calls int
	refs  []string
}

func (f *countingFetcher) Fetch(_ context.Context, ref string) ([]byte, error) {
	f.calls++
	f.refs = append(f.refs, ref)
	return f.data, nil
}

func TestSourceKind(t *testing.T) {
	cases := map[Source]Kind{
		"":                          KindEmpty,
		"data:image/png;base64,AAA": KindDataURI,
		"https://example.com/a.png": KindURL,
		"/static/filtered/a.png":    KindServicePath,
		"photos/a.jpg":              KindFile,
	}
	for src, want := range cases {
		if got := src.Kind(); got != want {
			t.Fatalf("%q: kind %v, want %v", src, got, want)
		}
	}
}

func TestDataURI_RoundTripDetectsPNG(t *testing.T) {
	data := pngBytes(t, 4, 3)
	src := EncodeDataURI(data)
	if !strings.HasPrefix(string(src), "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %s", src)
	}
	mt, got, err := DecodeDataURI(src)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mt != "image/png" || !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: mt=%s len=%d", mt, len(got))
	}
	if _, _, err := DecodeDataURI("data:,plain"); err == nil {
		t.Fatalf("expected error for non-base64 data uri")
	}
}

func TestLoader_CachesDecodedRaster(t *testing.T) {
	f := &countingFetcher{data: pngBytes(t, 8, 6)}
	l, err := NewLoader(f, 4, nil)
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	src := Source("/static/filtered/x.png")
	img, err := l.Image(context.Background(), src)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if _, err := l.Image(context.Background(), src); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("expected one fetch, got %d", f.calls)
	}
}

func TestLoader_FileAndMissingFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.png")
	if err := os.WriteFile(path, pngBytes(t, 2, 2), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, _ := NewLoader(nil, 0, nil)
	if _, err := l.Image(context.Background(), Source(path)); err != nil {
		t.Fatalf("file load: %v", err)
	}
	if _, err := l.Bytes(context.Background(), "https://x/y.png"); !errors.Is(err, ErrNoFetcher) {
		t.Fatalf("expected ErrNoFetcher, got %v", err)
	}
}

func TestPhoto_NaturalSizeFollowsRaster(t *testing.T) {
	var p Photo
	if p.Loaded() {
		t.Fatalf("zero photo must be empty")
	}
	p.Set("a.png", image.NewNRGBA(image.Rect(0, 0, 800, 600)))
	if s := p.NaturalSize(); s.Width != 800 || s.Height != 600 {
		t.Fatalf("unexpected natural size %+v", s)
	}
	if p.Source() != "a.png" {
		t.Fatalf("unexpected source %q", p.Source())
	}
}
