package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	Batch   BatchConfig   `json:"batch"`
	Journal JournalConfig `json:"journal"`
	Display DisplayConfig `json:"display"`
}

// BatchConfig controls how sensor packages are processed
type BatchConfig struct {
	Workers int `json:"workers"`
}

// JournalConfig controls the SQLite journal of processed packages
type JournalConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const (
	envJournal = "FITTRACKER_JOURNAL"
	envWorkers = "FITTRACKER_WORKERS"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Batch: BatchConfig{
			Workers: 4,
		},
		Journal: JournalConfig{
			Enabled: false,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
		},
	}
}

// Load reads the configuration from ~/.fittracker/config.json and applies
// environment overrides. A missing file yields ErrNoConfig.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to DefaultConfig (plus
// environment overrides) when no config file exists.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNoConfig) {
		d := DefaultConfig()
		applyDefaults(&d)
		applyEnv(&d)
		return &d, nil
	}
	return cfg, err
}

// Save writes the configuration to ~/.fittracker/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes DefaultConfig to ~/.fittracker/config.json unless a
// config file already exists. It returns the config path either way.
func CreateExample() (string, error) {
	path, err := getConfigPath()
	if err != nil {
		return "", err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	example := DefaultConfig()
	applyDefaults(&example)
	if err := Save(&example); err != nil {
		return "", err
	}
	return path, nil
}

// Validate checks the config for unusable values
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal.path is required when journal.enabled is true")
	}
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = defaults.Batch.Workers
	}
	if cfg.Journal.Path == "" {
		if dir, err := GetConfigDir(); err == nil {
			cfg.Journal.Path = filepath.Join(dir, "journal.db")
		}
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
}

func applyEnv(cfg *Config) {
	if value, ok := os.LookupEnv(envJournal); ok && value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			cfg.Journal.Enabled = enabled
		}
	}
	if value, ok := os.LookupEnv(envWorkers); ok && value != "" {
		if workers, err := strconv.Atoi(value); err == nil {
			cfg.Batch.Workers = workers
		}
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fittracker"), nil
}
