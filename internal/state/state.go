// Package state holds the UI state the single-page client keeps in one
// container: the job list, the raw and committed search term, and the
// selected facet values. The state struct is immutable; transitions are pure
// functions returning a new value, and a Store applies them atomically.
package state

import "jobdeck-engine/internal/domain"

type State struct {
	Jobs      []domain.Job     `json:"jobs"`
	Companies []domain.Company `json:"companies"`

	// SearchInput tracks keystrokes immediately; SearchTerm is the debounced
	// value the filter engine sees.
	SearchInput string `json:"searchInput"`
	SearchTerm  string `json:"searchTerm"`

	// Filters keeps selection order; inserts are deduped.
	Filters []string `json:"filters"`
}

// SetJobs replaces the job list wholesale. The most recent completed fetch
// wins; there is no merging with in-flight results.
func SetJobs(s State, jobs []domain.Job) State {
	s.Jobs = jobs
	return s
}

func SetCompanies(s State, companies []domain.Company) State {
	s.Companies = companies
	return s
}

func SetSearchInput(s State, raw string) State {
	s.SearchInput = raw
	return s
}

// CommitSearch copies the raw input to the committed term. Scheduling (the
// debounce quiet period) is the Store's concern, not the transition's.
func CommitSearch(s State) State {
	s.SearchTerm = s.SearchInput
	return s
}

// ToggleFilter adds the value to the selection, or removes it when already
// selected. Relative order of the remaining values is preserved.
func ToggleFilter(s State, value string) (State, bool) {
	for i, f := range s.Filters {
		if f == value {
			next := make([]string, 0, len(s.Filters)-1)
			next = append(next, s.Filters[:i]...)
			next = append(next, s.Filters[i+1:]...)
			s.Filters = next
			return s, false
		}
	}
	next := make([]string, len(s.Filters), len(s.Filters)+1)
	copy(next, s.Filters)
	s.Filters = append(next, value)
	return s, true
}

func ClearFilters(s State) State {
	s.Filters = nil
	return s
}
