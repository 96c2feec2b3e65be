package config

import (
	"fmt"
	"os"
	"strconv"

	"StockBoard/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Watchlist  []model.WatchlistEntry `yaml:"watchlist"`
	DataSource struct {
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		DefaultRange string `yaml:"default_range"`
	} `yaml:"data_source"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Refresh struct {
		Cron    string `yaml:"cron"`
		Enabled bool   `yaml:"enabled"`
	} `yaml:"refresh"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// DefaultWatchlist is used when the config file names no tickers.
var DefaultWatchlist = []model.WatchlistEntry{
	{Name: "Applied Digital", Symbol: "APLD"},
	{Name: "Symbotic", Symbol: "SYM"},
	{Name: "Tesla", Symbol: "TSLA"},
	{Name: "Google", Symbol: "GOOGL"},
	{Name: "Nebius Group N.V", Symbol: "NBIS"},
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Refresh.Enabled = true

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
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLMinutes = n
		}
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Refresh.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = DefaultWatchlist
	}
	if cfg.DataSource.DefaultRange == "" {
		cfg.DataSource.DefaultRange = string(model.Lookback1Y)
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Refresh.Cron == "" {
		cfg.Refresh.Cron = "0 */15 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockboard.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	for i, e := range c.Watchlist {
		if e.Name == "" || e.Symbol == "" {
			return fmt.Errorf("watchlist[%d]: name and symbol are required", i)
		}
	}
	if _, err := model.ParseLookback(c.DataSource.DefaultRange); err != nil {
		return fmt.Errorf("data_source.default_range: %w", err)
	}
	if c.Cache.TTLMinutes <= 0 {
		return fmt.Errorf("cache.ttl_minutes must be positive")
	}
	return nil
}

// DefaultLookback returns the validated default range.
func (c *Config) DefaultLookback() model.Lookback {
	lb, err := model.ParseLookback(c.DataSource.DefaultRange)
	if err != nil {
		return model.Lookback1Y
	}
	return lb
}
