package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned copy of cfg plus anything a user
// should fix before saving. Facet option lists are trimmed and deduped;
// duplicates would otherwise render twice as toggle controls.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Facets.Locations = trimList(out.Facets.Locations)
	out.Facets.Types = trimList(out.Facets.Types)
	out.Facets.Skills = trimList(out.Facets.Skills)
	out.Facets.Stages = trimList(out.Facets.Stages)
	out.Provider.BaseURL = strings.TrimRight(strings.TrimSpace(out.Provider.BaseURL), "/")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Provider.BaseURL != "" {
		u, err := url.Parse(out.Provider.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("provider.base_url must be an absolute URL: %q", out.Provider.BaseURL)
		}
	} else {
		res.addWarn("provider.base_url is empty; the engine will always serve the fallback dataset.")
	}
	if out.Provider.TimeoutSeconds < 0 {
		res.addErr("provider.timeout_seconds must be >= 0")
	}
	if out.Provider.RetryMax < 0 {
		res.addErr("provider.retry_max must be >= 0")
	}
	if out.Provider.RequestsPerSec < 0 {
		res.addErr("provider.requests_per_sec must be >= 0")
	}

	if out.Search.DebounceMS < 0 {
		res.addErr("search.debounce_ms must be >= 0")
	} else if out.Search.DebounceMS > 0 && out.Search.DebounceMS < 50 {
		res.addWarn("search.debounce_ms is very low (%d); search will commit on nearly every keystroke.", out.Search.DebounceMS)
	}

	if out.Refresh.Enabled && out.Refresh.IntervalSeconds <= 0 {
		res.addErr("refresh.interval_seconds must be > 0 when refresh is enabled")
	} else if out.Refresh.Enabled && out.Refresh.IntervalSeconds < 30 {
		res.addWarn("refresh.interval_seconds is very low (%d) and may hammer the board API.", out.Refresh.IntervalSeconds)
	}

	return out, res
}
