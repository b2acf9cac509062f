package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
app:
  port: 38561
  data_dir: "."
provider:
  base_url: "https://api.example.test/v1/"
  timeout_seconds: 10
  retry_max: 2
  retry_base_ms: 100
  requests_per_sec: 2
  burst: 4
search:
  debounce_ms: 300
refresh:
  enabled: true
  interval_seconds: 300
facets:
  locations: ["Zurich", "  Zurich ", "Geneva", ""]
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.App.Port != 38561 {
		t.Errorf("App.Port = %d, want 38561", cfg.App.Port)
	}
	if cfg.Provider.RetryMax != 2 {
		t.Errorf("Provider.RetryMax = %d, want 2", cfg.Provider.RetryMax)
	}
	if got := cfg.DebounceDelay(); got != 300*time.Millisecond {
		t.Errorf("DebounceDelay() = %v, want 300ms", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.DebounceDelay(); got != 300*time.Millisecond {
		t.Errorf("zero-value DebounceDelay() = %v, want 300ms", got)
	}
	if got := cfg.ProviderTimeout(); got != 15*time.Second {
		t.Errorf("zero-value ProviderTimeout() = %v, want 15s", got)
	}
	if got := cfg.RefreshInterval(); got != 5*time.Minute {
		t.Errorf("zero-value RefreshInterval() = %v, want 5m", got)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantOK   bool
		wantErr  string
		wantWarn string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
			wantOK: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.App.Port = 0 },
			wantOK:  false,
			wantErr: "app.port",
		},
		{
			name:    "relative base url rejected",
			mutate:  func(c *Config) { c.Provider.BaseURL = "api.example.test" },
			wantOK:  false,
			wantErr: "provider.base_url",
		},
		{
			name:     "empty base url warns about permanent fallback",
			mutate:   func(c *Config) { c.Provider.BaseURL = "" },
			wantOK:   true,
			wantWarn: "fallback",
		},
		{
			name:    "negative debounce rejected",
			mutate:  func(c *Config) { c.Search.DebounceMS = -1 },
			wantOK:  false,
			wantErr: "search.debounce_ms",
		},
		{
			name:     "tiny debounce warns",
			mutate:   func(c *Config) { c.Search.DebounceMS = 10 },
			wantOK:   true,
			wantWarn: "debounce_ms",
		},
		{
			name: "refresh enabled needs interval",
			mutate: func(c *Config) {
				c.Refresh.Enabled = true
				c.Refresh.IntervalSeconds = 0
			},
			wantOK:  false,
			wantErr: "refresh.interval_seconds",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTemp(t, sampleYAML))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.mutate(&cfg)

			_, vr := NormalizeAndValidate(cfg)
			if vr.OK() != tt.wantOK {
				t.Fatalf("OK() = %v, want %v (errors: %v)", vr.OK(), tt.wantOK, vr.Errors)
			}
			if tt.wantErr != "" && !anyContains(vr.Errors, tt.wantErr) {
				t.Errorf("errors %v missing %q", vr.Errors, tt.wantErr)
			}
			if tt.wantWarn != "" && !anyContains(vr.Warnings, tt.wantWarn) {
				t.Errorf("warnings %v missing %q", vr.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestNormalize_TrimsAndDedupesFacets(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	out, _ := NormalizeAndValidate(cfg)
	if len(out.Facets.Locations) != 2 {
		t.Errorf("Locations = %v, want [Zurich Geneva]", out.Facets.Locations)
	}
	if out.Provider.BaseURL != "https://api.example.test/v1" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", out.Provider.BaseURL)
	}
}

func TestSaveAtomic_RoundTrip(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg.Search.DebounceMS = 450
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("SaveAtomic() error: %v", err)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if again.Search.DebounceMS != 450 {
		t.Errorf("DebounceMS after round trip = %d, want 450", again.Search.DebounceMS)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("expected .bak of previous version: %v", err)
	}
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	cfg, _ := Load(path)
	cfg.App.Port = -1
	err := SaveAtomic(path, cfg)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "app.port") {
		t.Errorf("error %q does not mention app.port", err)
	}
}

func anyContains(xs []string, sub string) bool {
	for _, x := range xs {
		if strings.Contains(x, sub) {
			return true
		}
	}
	return false
}
