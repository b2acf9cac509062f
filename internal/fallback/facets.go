package fallback

import "jobdeck-engine/internal/domain"

// Facets returns the fixed facet taxonomy rendered as filter toggles. The
// options are enumerated, not derived from the live job set.
func Facets() []domain.FacetGroup {
	return []domain.FacetGroup{
		{Category: "Location", Options: []string{"Zurich", "Geneva", "Lausanne", "Basel", "Bern", "Remote"}},
		{Category: "Type", Options: []string{"Full-time", "Part-time", "Contract", "Internship"}},
		{Category: "Skills", Options: []string{"React", "TypeScript", "Go", "Python", "Kubernetes", "Terraform", "PostgreSQL", "AWS", "Figma"}},
		{Category: "Stage", Options: []string{"Pre-seed", "Seed", "Series A", "Series B"}},
	}
}
