package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "mps7.yaml"

// Report output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config represents the top-level mps7.yaml configuration.
type Config struct {
	Report ReportConfig `yaml:"report"`
}

// ReportConfig controls how parsed logs are rendered.
type ReportConfig struct {
	Format       string   `yaml:"format"`   // text, csv or json
	Timezone     string   `yaml:"timezone"` // IANA name, e.g. "UTC"
	ShowEntries  bool     `yaml:"show_entries"`
	BalanceUsers []uint64 `yaml:"balance_users,omitempty"`
}

// Load reads an mps7.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists and returns Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Format:       FormatText,
			Timezone:     "UTC",
			ShowEntries:  true,
			BalanceUsers: []uint64{2456938384156277127},
		},
	}
}

// Validate checks the format and timezone values.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("invalid report format %q", c.Report.Format)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Report.Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}
