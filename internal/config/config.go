package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "barberbook.yaml"

// Artifact formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config represents the top-level barberbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Storage  StorageConfig  `yaml:"storage"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Log      LogConfig      `yaml:"log"`
}

// BusinessConfig identifies the shop.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig controls where and how dated artifacts are kept.
type StorageConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // "csv" or "xlsx"
	Recent int    `yaml:"recent"` // artifacts offered when choosing
}

// LedgerConfig controls record normalization and the spreadsheet layout.
type LedgerConfig struct {
	PlaceholderClient string `yaml:"placeholder_client"`
	Sheet             string `yaml:"sheet"`
}

// LogConfig controls the session log file.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Load reads a barberbook.yaml file from disk. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, but a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
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

// Default returns a Config with sensible defaults for a new shop.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Storage: StorageConfig{
			Dir:    "planilhas_de_servico",
			Prefix: "balanco_diario_",
			Format: FormatXLSX,
			Recent: 5,
		},
		Ledger: LedgerConfig{
			PlaceholderClient: "geral",
			Sheet:             "Servicos",
		},
		Log: LogConfig{
			File:  "servicos_barbearia.log",
			Level: "info",
		},
	}
}

// Validate checks the storage settings.
func (c *Config) Validate() error {
	switch c.Storage.Format {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("invalid config: storage.format %q (want %s or %s)", c.Storage.Format, FormatCSV, FormatXLSX)
	}
	if c.Storage.Prefix == "" {
		return errors.New("invalid config: storage.prefix is empty")
	}
	if c.Storage.Dir == "" {
		return errors.New("invalid config: storage.dir is empty")
	}
	if c.Storage.Recent < 1 {
		return fmt.Errorf("invalid config: storage.recent must be at least 1, got %d", c.Storage.Recent)
	}
	return nil
}

// Ext returns the artifact file extension for the configured format.
func (c *Config) Ext() string {
	return "." + c.Storage.Format
}
