package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Provider struct {
		BaseURL        string  `yaml:"base_url" json:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RetryMax       int     `yaml:"retry_max" json:"retry_max"`
		RetryBaseMS    int     `yaml:"retry_base_ms" json:"retry_base_ms"`
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
	} `yaml:"provider" json:"provider"`

	Search struct {
		DebounceMS int `yaml:"debounce_ms" json:"debounce_ms"`
	} `yaml:"search" json:"search"`

	Refresh struct {
		Enabled         bool `yaml:"enabled" json:"enabled"`
		IntervalSeconds int  `yaml:"interval_seconds" json:"interval_seconds"`
	} `yaml:"refresh" json:"refresh"`

	Facets struct {
		Locations []string `yaml:"locations" json:"locations"`
		Types     []string `yaml:"types" json:"types"`
		Skills    []string `yaml:"skills" json:"skills"`
		Stages    []string `yaml:"stages" json:"stages"`
	} `yaml:"facets" json:"facets"`
}

// DebounceDelay returns the quiet period for committing the search term,
// falling back to the 300ms default when unset.
func (c Config) DebounceDelay() time.Duration {
	if c.Search.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

func (c Config) ProviderTimeout() time.Duration {
	if c.Provider.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

func (c Config) RefreshInterval() time.Duration {
	if c.Refresh.IntervalSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Refresh.IntervalSeconds) * time.Second
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
