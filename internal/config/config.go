package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankbook.yaml configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DataConfig locates the bookkeeping data on disk.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultsConfig supplies fallback values for CLI flags.
type DefaultsConfig struct {
	Account        string `yaml:"account,omitempty"`
	PiggyBank      string `yaml:"piggy_bank,omitempty"`
	ImportCategory string `yaml:"import_category,omitempty"`
}

// Load reads a bankbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new data directory.
func Default(dataDir string) *Config {
	return &Config{
		Data: DataConfig{Dir: dataDir},
		Defaults: DefaultsConfig{
			ImportCategory: "Uncategorized",
		},
	}
}

// ApplyEnv overlays environment overrides onto the config. The caller is
// expected to have loaded any .env file first.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BANKBOOK_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("BANKBOOK_ACCOUNT"); v != "" {
		c.Defaults.Account = v
	}
	if v := os.Getenv("BANKBOOK_PIGGY_BANK"); v != "" {
		c.Defaults.PiggyBank = v
	}
}
