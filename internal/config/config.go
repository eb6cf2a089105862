// Package config loads browser settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		BaseURL    string `yaml:"baseURL"`
		TimeoutSec int    `yaml:"timeoutSec"`
	} `yaml:"api"`
	Cache struct {
		Backend string `yaml:"backend"`
		Dir     string `yaml:"dir"`
		TTLSec  int    `yaml:"ttlSec"`
	} `yaml:"cache"`
	Fetch struct {
		MaxRetries int `yaml:"maxRetries"`
	} `yaml:"fetch"`
	Table struct {
		PageSize int `yaml:"pageSize"`
	} `yaml:"table"`
	Charts struct {
		GeoJSONURL string  `yaml:"geoJSONURL"`
		Width      float64 `yaml:"width"`
		Height     float64 `yaml:"height"`
	} `yaml:"charts"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
}

func Default() Config {
	var c Config
	c.API.BaseURL = "https://demodata.grapecity.com/northwind/api/v1"
	c.API.TimeoutSec = 30
	c.Cache.Backend = "memory"
	c.Cache.TTLSec = 60
	c.Fetch.MaxRetries = 3
	c.Table.PageSize = 10
	c.Charts.GeoJSONURL = "https://raw.githubusercontent.com/holtzy/D3-graph-gallery/master/DATA/world.geojson"
	c.Charts.Width = 800
	c.Charts.Height = 600
	return c
}

// Load reads path over the defaults. A missing file is not an error;
// environment variables win over both.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return c, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// .env is optional and only feeds the overrides below.
	_ = godotenv.Load()
	applyEnv(&c)

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("NWB_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("NWB_CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("NWB_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv("NWB_CACHE_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.TTLSec = n
		}
	}
	if v := os.Getenv("NWB_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Fetch.MaxRetries = n
		}
	}
	if v := os.Getenv("NWB_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Table.PageSize = n
		}
	}
	if v := os.Getenv("NWB_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.baseURL must not be empty")
	}
	switch c.Cache.Backend {
	case "memory", "pebble":
	default:
		return fmt.Errorf("cache.backend must be memory or pebble, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "pebble" && c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required for the pebble backend")
	}
	if c.Cache.TTLSec <= 0 {
		return fmt.Errorf("cache.ttlSec must be positive, got %d", c.Cache.TTLSec)
	}
	if c.Fetch.MaxRetries < 0 {
		return fmt.Errorf("fetch.maxRetries must not be negative, got %d", c.Fetch.MaxRetries)
	}
	if c.Table.PageSize <= 0 {
		return fmt.Errorf("table.pageSize must be positive, got %d", c.Table.PageSize)
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts.width and charts.height must be positive")
	}
	return nil
}
