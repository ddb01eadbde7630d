// Package models defines data structures for configuration and extracted records.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListing    = "https://ebible.org/Scriptures/dir.php"
	DefaultDetailsURL = "https://ebible.org/find/details.php?id=%s"
	DefaultOutputDir  = "biblesources-results"
	DefaultCacheDir   = "raw/info"
	DefaultDBName     = "biblesources.db"
	DefaultWorkers    = 4
)

// Config is the file-backed configuration (config.yaml). CLI flags override it.
type Config struct {
	Listing        string        `yaml:"listing"`     // file path or URL of the scripture directory page
	DetailsURL     string        `yaml:"details_url"` // fmt template taking the source ID
	OutputDir      string        `yaml:"output_dir"`
	CacheDir       string        `yaml:"cache_dir"`
	DBPath         string        `yaml:"db_path"`
	Languages      string        `yaml:"languages"` // registry TSV/CSV
	Workers        int           `yaml:"workers"`
	MaxAge         time.Duration `yaml:"max_age"` // 0 = cached documents never go stale
	Offline        bool          `yaml:"offline"`
	RetryAttempts  uint          `yaml:"retry_attempts"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
	NotFoundMarker string        `yaml:"not_found_marker"`
	DetectLanguage bool          `yaml:"detect_language"`

	// DetectLanguages narrows detection to these ISO 639-3 codes (all languages when fewer than two).
	DetectLanguages []string `yaml:"detect_languages"`

	// Licenses extends the default license table (phrase -> code).
	Licenses map[string]string `yaml:"licenses"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Listing:       DefaultListing,
		DetailsURL:    DefaultDetailsURL,
		OutputDir:     DefaultOutputDir,
		CacheDir:      DefaultCacheDir,
		Workers:       DefaultWorkers,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.DetailsURL == "" {
		config.DetailsURL = DefaultDetailsURL
	}
	return config, nil
}

// FetchConfig holds runtime configuration for one build run.
// Values come from the config file with CLI flags applied on top.
type FetchConfig struct {
	Sources     []Source
	WorkerCount int
}
