package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBody = 4096

// ErrMissingPath is returned when the service reports success without an image path.
var ErrMissingPath = errors.New("response has no image path")

// Client talks to the remote image-processing service.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient returns a client for the service at baseURL. A zero timeout
// leaves requests bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse service url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("service url %q: unsupported scheme", baseURL)
	}
	return &Client{base: u, http: &http.Client{}, timeout: timeout, logger: logger}, nil
}

// ApplyFilter asks the service to apply filterName to fileName and returns
// the path of the filtered image.
func (c *Client) ApplyFilter(ctx context.Context, filterName, fileName string) (string, error) {
	var resp ApplyResponse
	if err := c.postJSON(ctx, PathApplyFilter, FilterRequest{FilterName: filterName, FileName: fileName}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RemoteError{Op: "apply filter", Message: resp.Error}
	}
	if resp.FilteredImage == "" {
		return "", fmt.Errorf("apply filter: %w", ErrMissingPath)
	}
	return resp.FilteredImage, nil
}

// PreviewFilter asks for a preview rendition without committing it.
func (c *Client) PreviewFilter(ctx context.Context, filterName, fileName string) (string, error) {
	var resp PreviewResponse
	if err := c.postJSON(ctx, PathPreviewFilter, FilterRequest{FilterName: filterName, FileName: fileName}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RemoteError{Op: "preview filter", Message: resp.Error}
	}
	if resp.PreviewImage == "" {
		return "", fmt.Errorf("preview filter: %w", ErrMissingPath)
	}
	return resp.PreviewImage, nil
}

// Enhance runs the AI enhancement and returns the enhanced image path.
func (c *Client) Enhance(ctx context.Context, fileName string) (string, error) {
	var resp EnhanceResponse
	if err := c.postJSON(ctx, PathEnhanceImage, EnhanceRequest{FileName: fileName}, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &RemoteError{Op: "enhance image", Message: resp.Error}
	}
	if resp.EnhancedImage == "" {
		return "", fmt.Errorf("enhance image: %w", ErrMissingPath)
	}
	return resp.EnhancedImage, nil
}

// Fetch downloads an image referenced by an absolute URL or a service path.
func (c *Client) Fetch(ctx context.Context, ref string) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	target := c.resolve(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(req, resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// resolve returns the absolute URL for a service path.
func (c *Client) resolve(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.base.String() + "/" + strings.TrimLeft(ref, "/")
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve(path), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := checkStatus(req, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, path, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	req.Header.Set("X-Request-ID", id)
	start := time.Now()
	resp, err := c.http.Do(req)
	if c.logger != nil {
		attrs := []any{"method", req.Method, "url", req.URL.String(), "request_id", id, "elapsed", time.Since(start)}
		if err != nil {
			c.logger.Error("image service request", append(attrs, "error", err)...)
		} else {
			c.logger.Debug("image service request", append(attrs, "status", resp.StatusCode)...)
		}
	}
	return resp, err
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func checkStatus(req *http.Request, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%s %s: %s (%d)", req.Method, req.URL.Path, strings.TrimSpace(string(b)), resp.StatusCode)
}
