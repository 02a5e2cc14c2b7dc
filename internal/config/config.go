package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MarketWatch/internal/model"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Kind string `yaml:"kind"` // "yahoo" or "mock"
	} `yaml:"data_source"`
	Dashboard struct {
		Period string `yaml:"period"`
	} `yaml:"dashboard"`
	Cache struct {
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Catalog Catalog `yaml:"catalog"`
	Proxy   string  `yaml:"proxy"`
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
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Kind = v
	}
	if v := os.Getenv("PERIOD"); v != "" {
		cfg.Dashboard.Period = v
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		var ttl int
		if _, err := fmt.Sscanf(v, "%d", &ttl); err == nil {
			cfg.Cache.TTLSeconds = ttl
		}
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Kind == "" {
		cfg.DataSource.Kind = "yahoo"
	}
	if cfg.Dashboard.Period == "" {
		cfg.Dashboard.Period = string(model.Period1Y)
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Schedule.RefreshCron == "" {
		// Every 5 minutes, aligned with the cache TTL.
		cfg.Schedule.RefreshCron = "0 */5 * * * *"
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.DataSource.Kind != "yahoo" && c.DataSource.Kind != "mock" {
		return fmt.Errorf("data_source.kind must be yahoo or mock, got %q", c.DataSource.Kind)
	}
	if !model.Period(c.Dashboard.Period).Valid() {
		return fmt.Errorf("dashboard.period %q is not supported", c.Dashboard.Period)
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive")
	}
	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must define at least one category")
	}
	if len(c.Catalog.Symbols()) == 0 {
		return fmt.Errorf("catalog must define at least one instrument")
	}
	for _, cat := range c.Catalog {
		for _, a := range cat.Assets {
			if a.Symbol == "" {
				return fmt.Errorf("catalog category %q: instrument %q has no symbol", cat.Name, a.Label)
			}
		}
	}
	return nil
}
