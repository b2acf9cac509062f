package httpapi

import (
	"encoding/json"
	"net/http"

	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/state"
)

// StateHandler exposes the UI state container: raw keystrokes go in, the
// debounced committed term and the derived visible list come out.
type StateHandler struct {
	UI *state.Store
}

type stateView struct {
	SearchInput string   `json:"searchInput"`
	SearchTerm  string   `json:"searchTerm"`
	Filters     []string `json:"filters"`
	JobCount    int      `json:"jobCount"`
	Visible     int      `json:"visible"`
}

func (h StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.UI.Snapshot()
	filters := snap.Filters
	if filters == nil {
		filters = []string{}
	}
	writeJSON(w, stateView{
		SearchInput: snap.SearchInput,
		SearchTerm:  snap.SearchTerm,
		Filters:     filters,
		JobCount:    len(snap.Jobs),
		Visible:     len(h.UI.Visible()),
	})
}

// Search records raw input; the committed term follows after the quiet
// period. commit=true skips the wait (the enter-key path).
func (h StateHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input  string `json:"input"`
		Commit bool   `json:"commit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
		return
	}

	h.UI.SetSearchInput(req.Input)
	if req.Commit {
		h.UI.CommitSearchNow()
	}
	h.Get(w, r)
}

func (h StateHandler) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "value is required")
		return
	}

	added := h.UI.ToggleFilter(req.Value)
	snap := h.UI.Snapshot()
	filters := snap.Filters
	if filters == nil {
		filters = []string{}
	}
	writeJSON(w, map[string]any{"filters": filters, "added": added})
}

func (h StateHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.UI.ClearFilters()
	writeJSON(w, map[string]any{"filters": []string{}})
}

// Visible returns the derived job list for the committed term and selection.
func (h StateHandler) Visible(w http.ResponseWriter, r *http.Request) {
	jobs := h.UI.Visible()
	if jobs == nil {
		jobs = []domain.Job{}
	}
	writeJSON(w, jobs)
}
