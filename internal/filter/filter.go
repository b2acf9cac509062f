package filter

import (
	"strings"

	"jobdeck-engine/internal/domain"
)

// Apply derives the visible job list from the full set, a committed search
// term, and the selected facet values. A job stays visible when it matches the
// search term and every selected value (every value must hit at least one of
// location, type, tags, or stage). Output preserves input order and is always
// a fresh slice; the input is never mutated.
//
// The term is compared case-insensitively as a substring of title, company,
// and each tag. Facet values are exact matches. An empty or whitespace-only
// term passes everything, as does an empty selection.
func Apply(jobs []domain.Job, term string, selected []string) []domain.Job {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesSearch(j, term) {
			continue
		}
		if !matchesSelection(j, selected) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesSearch(j domain.Job, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company), term) {
		return true
	}
	for _, t := range j.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// matchesSelection requires every selected value to hit at least one field.
// AND across values, OR across the four matchable fields per value.
func matchesSelection(j domain.Job, selected []string) bool {
	for _, f := range selected {
		if j.Location == f || j.Type == f || j.Stage == f || j.HasTag(f) {
			continue
		}
		return false
	}
	return true
}
