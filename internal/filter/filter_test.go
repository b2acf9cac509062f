package filter

import (
	"reflect"
	"testing"

	"jobdeck-engine/internal/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{
			ID: 1, Title: "Frontend Engineer", Company: "TechFlow AG",
			Location: "Zurich", Type: "Full-time", Stage: "Seed",
			Tags: []string{"React", "TypeScript"},
		},
		{
			ID: 2, Title: "Backend Engineer", Company: "DataPeak",
			Location: "Geneva", Type: "Full-time", Stage: "Series A",
			Tags: []string{"Go", "PostgreSQL"},
		},
		{
			ID: 3, Title: "Platform Engineer", Company: "CloudNova",
			Location: "Remote", Type: "Contract", Stage: "Series B",
			Tags: []string{"Go", "Kubernetes"},
		},
	}
}

func ids(jobs []domain.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		selected []string
		wantIDs  []int64
	}{
		{
			name:    "empty term and selection is identity",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "substring match on title",
			term:    "front",
			wantIDs: []int64{1},
		},
		{
			name:    "substring match on company",
			term:    "techflow",
			wantIDs: []int64{1},
		},
		{
			name:    "substring match on tag",
			term:    "kuber",
			wantIDs: []int64{3},
		},
		{
			name:    "search is case insensitive",
			term:    "REACT",
			wantIDs: []int64{1},
		},
		{
			name:    "whitespace-only term passes all",
			term:    "   ",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "no match anywhere",
			term:    "zz",
			wantIDs: []int64{},
		},
		{
			name:     "facet matches location",
			selected: []string{"Zurich"},
			wantIDs:  []int64{1},
		},
		{
			name:     "facet matches tag",
			selected: []string{"React"},
			wantIDs:  []int64{1},
		},
		{
			name:     "facet matches type",
			selected: []string{"Contract"},
			wantIDs:  []int64{3},
		},
		{
			name:     "facet matches stage",
			selected: []string{"Series A"},
			wantIDs:  []int64{2},
		},
		{
			name:     "facet mismatch empties the result",
			selected: []string{"Remote"},
			wantIDs:  []int64{3},
		},
		{
			name:     "facets are exact, not substrings",
			selected: []string{"Zur"},
			wantIDs:  []int64{},
		},
		{
			name:     "facets conjoin across values",
			selected: []string{"Go", "Remote"},
			wantIDs:  []int64{3},
		},
		{
			name:     "conflicting facets yield nothing",
			selected: []string{"Zurich", "Geneva"},
			wantIDs:  []int64{},
		},
		{
			name:     "term and facets combine",
			term:     "engineer",
			selected: []string{"Go"},
			wantIDs:  []int64{2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleJobs(), tt.term, tt.selected)
			if !reflect.DeepEqual(ids(got), tt.wantIDs) {
				t.Errorf("Apply() ids = %v, want %v", ids(got), tt.wantIDs)
			}
		})
	}
}

func TestApply_SpecScenarioTechFlow(t *testing.T) {
	jobs := []domain.Job{{
		Title: "Frontend Engineer", Company: "TechFlow AG",
		Tags: []string{"React", "TypeScript"}, Location: "Zurich",
		Type: "Full-time", Stage: "Seed",
	}}

	if got := Apply(jobs, "front", nil); len(got) != 1 {
		t.Errorf(`Apply(term="front") = %d jobs, want 1`, len(got))
	}
	if got := Apply(jobs, "", []string{"Remote"}); len(got) != 0 {
		t.Errorf(`Apply(filters=["Remote"]) = %d jobs, want 0`, len(got))
	}
	if got := Apply(jobs, "", []string{"React"}); len(got) != 1 {
		t.Errorf(`Apply(filters=["React"]) = %d jobs, want 1`, len(got))
	}
	if got := Apply(jobs, "zz", nil); len(got) != 0 {
		t.Errorf(`Apply(term="zz") = %d jobs, want 0`, len(got))
	}
}

func TestApply_NilTagsTreatedAsEmpty(t *testing.T) {
	jobs := []domain.Job{{ID: 1, Title: "Designer", Company: "Inkline", Location: "Basel", Type: "Part-time", Stage: "Pre-seed"}}

	if got := Apply(jobs, "design", nil); len(got) != 1 {
		t.Errorf("search over nil tags = %d jobs, want 1", len(got))
	}
	if got := Apply(jobs, "", []string{"React"}); len(got) != 0 {
		t.Errorf("tag facet over nil tags = %d jobs, want 0", len(got))
	}
}

func TestApply_Idempotent(t *testing.T) {
	once := Apply(sampleJobs(), "engineer", []string{"Go"})
	twice := Apply(once, "engineer", []string{"Go"})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second application changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestApply_MonotoneUnderAddedFilters(t *testing.T) {
	jobs := sampleJobs()
	base := Apply(jobs, "", []string{"Go"})
	narrowed := Apply(jobs, "", []string{"Go", "Remote"})
	if len(narrowed) > len(base) {
		t.Errorf("adding a filter grew the result: %d > %d", len(narrowed), len(base))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	want := ids(jobs)
	_ = Apply(jobs, "go", []string{"Remote"})
	if !reflect.DeepEqual(ids(jobs), want) {
		t.Errorf("input reordered or mutated: %v, want %v", ids(jobs), want)
	}
}
