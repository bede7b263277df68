package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the editor and its image service.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Image service
	ServiceURL            string `json:"service_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`

	// Photo opened at startup
	ImagePath string `json:"image_path"`
	FileName  string `json:"file_name"`

	// Download target
	DownloadDir  string `json:"download_dir"`
	DownloadName string `json:"download_name"`

	// Editing
	MinSelectionPx float64  `json:"min_selection_px"`
	BrightnessStep int      `json:"brightness_step"`
	Filters        []string `json:"filters"`

	// Display
	DisplayMaxW   int  `json:"display_max_w"`
	DisplayMaxH   int  `json:"display_max_h"`
	StatusSeconds int  `json:"status_seconds"`
	CacheEntries  int  `json:"cache_entries"`
	DarkMode      bool `json:"dark_mode"`
}

// DefaultFilters are offered when the config names none.
var DefaultFilters = []string{"grayscale", "sepia", "blur", "sharpen", "invert", "vintage"}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		ServiceURL:            "http://localhost:8080",
		RequestTimeoutSeconds: 30,
		DownloadDir:           ".",
		DownloadName:          "edited-photo.png",
		MinSelectionPx:        10,
		BrightnessStep:        10,
		Filters:               append([]string(nil), DefaultFilters...),
		DisplayMaxW:           800,
		DisplayMaxH:           600,
		StatusSeconds:         3,
		CacheEntries:          16,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		c.ServiceURL = "http://localhost:8080"
	}
	if c.RequestTimeoutSeconds <= 0 {
		c.RequestTimeoutSeconds = 30
	}
	if c.DownloadDir == "" {
		c.DownloadDir = "."
	}
	if c.DownloadName == "" {
		c.DownloadName = "edited-photo.png"
	}
	if c.MinSelectionPx <= 0 {
		c.MinSelectionPx = 10
	}
	if c.BrightnessStep <= 0 || c.BrightnessStep > 100 {
		c.BrightnessStep = 10
	}
	if len(c.Filters) == 0 {
		c.Filters = append([]string(nil), DefaultFilters...)
	}
	if c.DisplayMaxW < 50 {
		c.DisplayMaxW = 800
	}
	if c.DisplayMaxH < 50 {
		c.DisplayMaxH = 600
	}
	if c.StatusSeconds <= 0 {
		c.StatusSeconds = 3
	}
	if c.CacheEntries <= 0 {
		c.CacheEntries = 16
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
