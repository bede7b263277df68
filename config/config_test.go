package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServiceURL != "http://localhost:8080" || cfg.MinSelectionPx != 10 || cfg.StatusSeconds != 3 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	body := `{"service_url":"http://img:9000","min_selection_px":-1,"brightness_step":500,"filters":[],"display_max_w":10}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServiceURL != "http://img:9000" {
		t.Fatalf("service url not read: %q", cfg.ServiceURL)
	}
	if cfg.MinSelectionPx != 10 || cfg.BrightnessStep != 10 || cfg.DisplayMaxW != 800 {
		t.Fatalf("values not clamped: %+v", cfg)
	}
	if len(cfg.Filters) != len(DefaultFilters) {
		t.Fatalf("expected default filters, got %v", cfg.Filters)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	_ = os.WriteFile(path, []byte("{"), 0o644)
	cfg, err := Load(path)
	if err == nil || cfg == nil {
		t.Fatalf("expected defaults with error, got %v %v", cfg, err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.DownloadDir = "/tmp/out"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil || got.DownloadDir != "/tmp/out" {
		t.Fatalf("round trip: %+v %v", got, err)
	}
}
