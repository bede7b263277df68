package filter

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, 0, nil)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestApplyFilter_SendsContractBody(t *testing.T) {
	var got FilterRequest
	var reqID string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PathApplyFilter {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		reqID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(ApplyResponse{Success: true, FilteredImage: "/static/filtered/p.png"})
	})
	path, err := c.ApplyFilter(context.Background(), "sepia", "p.png")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if path != "/static/filtered/p.png" {
		t.Fatalf("unexpected path %q", path)
	}
	if got.FilterName != "sepia" || got.FileName != "p.png" {
		t.Fatalf("unexpected body %+v", got)
	}
	if reqID == "" {
		t.Fatalf("missing request id header")
	}
}

func TestApplyFilter_SuccessFalseCarriesServerMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ApplyResponse{Success: false, Error: "unknown filter"})
	})
	_, err := c.ApplyFilter(context.Background(), "nope", "p.png")
	var re *RemoteError
	if !errors.As(err, &re) || re.Message != "unknown filter" {
		t.Fatalf("expected RemoteError with server message, got %v", err)
	}
}

func TestPreviewAndEnhance(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PathPreviewFilter:
			_ = json.NewEncoder(w).Encode(PreviewResponse{Success: true, PreviewImage: "/static/preview/p.png"})
		case PathEnhanceImage:
			var body EnhanceRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.FileName != "p.png" {
				t.Errorf("unexpected enhance body %+v", body)
			}
			_ = json.NewEncoder(w).Encode(EnhanceResponse{Success: true, EnhancedImage: "/static/enhanced/p.png"})
		default:
			http.NotFound(w, r)
		}
	})
	if p, err := c.PreviewFilter(context.Background(), "blur", "p.png"); err != nil || p != "/static/preview/p.png" {
		t.Fatalf("preview: %q %v", p, err)
	}
	if p, err := c.Enhance(context.Background(), "p.png"); err != nil || p != "/static/enhanced/p.png" {
		t.Fatalf("enhance: %q %v", p, err)
	}
}

func TestNon2xxAndMissingPath(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == PathEnhanceImage {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(PreviewResponse{Success: true})
	})
	if _, err := c.Enhance(context.Background(), "p.png"); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := c.PreviewFilter(context.Background(), "blur", "p.png"); !errors.Is(err, ErrMissingPath) {
		t.Fatalf("expected ErrMissingPath, got %v", err)
	}
}

func TestFetch_ResolvesServicePath(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/filtered/p.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("pixels"))
	})
	data, err := c.Fetch(context.Background(), "/static/filtered/p.png")
	if err != nil || string(data) != "pixels" {
		t.Fatalf("fetch: %q %v", data, err)
	}
}

func TestNewClient_RejectsBadScheme(t *testing.T) {
	if _, err := NewClient("ftp://host", 0, nil); err == nil {
		t.Fatalf("expected error for ftp scheme")
	}
}

func TestBrightness(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	if c := Brightness(img, BrightnessNeutral).NRGBAAt(0, 0); c.R != 100 {
		t.Fatalf("neutral brightness changed pixel: %+v", c)
	}
	if c := Brightness(img, 150).NRGBAAt(0, 0); c.R != 150 || c.A != 255 {
		t.Fatalf("expected channels scaled by 1.5: %+v", c)
	}
	if c := Brightness(img, 50).NRGBAAt(0, 0); c.R != 50 {
		t.Fatalf("expected channels halved: %+v", c)
	}
	if c := Brightness(img, 300).NRGBAAt(0, 0); c.R != 200 {
		t.Fatalf("clamped maximum should double: %+v", c)
	}
	if c := Brightness(img, -50).NRGBAAt(0, 0); c.R != 0 {
		t.Fatalf("clamped minimum should be black: %+v", c)
	}
	if Brightness(nil, 120) != nil {
		t.Fatalf("nil image must stay nil")
	}
}
