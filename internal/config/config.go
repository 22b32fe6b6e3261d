package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Assets struct {
		BaseURL string `yaml:"base_url"`
		Dir     string `yaml:"dir"`
	} `yaml:"assets"`
	Output struct {
		Dir    string `yaml:"dir"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ASSETS_BASE_URL"); v != "" {
		cfg.Assets.BaseURL = v
	}
	if v := os.Getenv("ASSETS_DIR"); v != "" {
		cfg.Assets.Dir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Assets.BaseURL == "" && cfg.Assets.Dir == "" {
		cfg.Assets.Dir = "assets"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "charts"
	}
	if cfg.Output.Width == 0 {
		cfg.Output.Width = 960
	}
	if cfg.Output.Height == 0 {
		cfg.Output.Height = 420
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Assets.BaseURL == "" && c.Assets.Dir == "" {
		return fmt.Errorf("one of assets.base_url or assets.dir is required")
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("output.width and output.height must be positive")
	}
	return nil
}
