package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/fallback"
	"jobdeck-engine/internal/state"
)

type FacetsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

// Get returns the facet taxonomy. The shipped taxonomy is fixed; non-empty
// config lists override their category.
func (h FacetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	groups := fallback.Facets()

	cfg := h.CfgVal.Load().(config.Config)
	overrides := map[string][]string{
		"Location": cfg.Facets.Locations,
		"Type":     cfg.Facets.Types,
		"Skills":   cfg.Facets.Skills,
		"Stage":    cfg.Facets.Stages,
	}

	out := make([]domain.FacetGroup, 0, len(groups))
	for _, g := range groups {
		if opts := overrides[g.Category]; len(opts) > 0 {
			g.Options = opts
		}
		out = append(out, g)
	}
	writeJSON(w, out)
}

type CompaniesHandler struct {
	UI *state.Store
}

func (h CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	companies := h.UI.Snapshot().Companies
	if companies == nil {
		companies = []domain.Company{}
	}
	writeJSON(w, companies)
}
