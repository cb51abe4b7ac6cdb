// Package config loads and saves the paylens TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all paylens configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Analysis   AnalysisConfig   `toml:"analysis"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds file-location preferences.
type GeneralConfig struct {
	InputCSV  string `toml:"input_csv,omitempty"`
	OutputDir string `toml:"output_dir,omitempty"`
	CacheDir  string `toml:"cache_dir,omitempty"`
}

// AnalysisConfig holds analysis tunables.
type AnalysisConfig struct {
	TopVendors        int     `toml:"top_vendors"`
	AnomalyPercentile float64 `toml:"anomaly_percentile"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			OutputDir: ".",
		},
		Analysis: AnalysisConfig{
			TopVendors:        20,
			AnomalyPercentile: 0.99,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paylens")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paylens")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CachePath returns the sqlite cache location, honoring the config override.
func CachePath(cfg Config) string {
	if cfg.General.CacheDir != "" {
		return filepath.Join(cfg.General.CacheDir, "paylens.db")
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(ConfigDir(), "paylens.db")
	}
	return filepath.Join(dir, "paylens", "paylens.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
