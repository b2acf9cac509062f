package httpapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/filter"
	"jobdeck-engine/internal/state"
)

type JobsHandler struct {
	UI *state.Store
}

// List serves the visible job list for ad-hoc query parameters: q is the
// search term, repeated filter params are the facet selection. Sorting is
// presentational and applied after the filter engine.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := q.Get("q")
	selected := q["filter"]

	jobs := filter.Apply(h.UI.Snapshot().Jobs, term, selected)
	applySort(jobs, q.Get("sort"), q.Get("order"))

	writeJSON(w, jobs)
}

func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	for _, j := range h.UI.Snapshot().Jobs {
		if j.ID == id {
			writeJSON(w, j)
			return
		}
	}
	WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
}

// applySort orders in place by a whitelisted column; order=asc|desc overrides
// the column's default direction. Unknown columns keep the engine's order.
func applySort(jobs []domain.Job, col, order string) {
	var less func(a, b domain.Job) bool
	desc := false
	switch col {
	case "title":
		less = func(a, b domain.Job) bool { return a.Title < b.Title }
	case "company":
		less = func(a, b domain.Job) bool { return a.Company < b.Company }
	case "applicants":
		// popularity reads biggest-first
		less = func(a, b domain.Job) bool { return a.Applicants < b.Applicants }
		desc = true
	case "posted":
		less = func(a, b domain.Job) bool { return a.PostedDays < b.PostedDays }
	default:
		return
	}
	switch order {
	case "asc":
		desc = false
	case "desc":
		desc = true
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if desc {
			return less(jobs[j], jobs[i])
		}
		return less(jobs[i], jobs[j])
	})
}
