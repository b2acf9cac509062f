package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/state"
	"jobdeck-engine/internal/store"
)

type SavedHandler struct {
	UI    *state.Store
	Local *store.Store
	Hub   *events.Hub
}

type savedJobView struct {
	Job     domain.Job `json:"job"`
	SavedAt time.Time  `json:"savedAt"`
}

// List joins bookmarks against the current job list. A bookmark whose job no
// longer exists is returned with just the ID so the UI can prune it.
func (h SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Local.ListSaved(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	byID := make(map[int64]domain.Job)
	for _, j := range h.UI.Snapshot().Jobs {
		byID[j.ID] = j
	}

	out := make([]savedJobView, 0, len(saved))
	for _, sj := range saved {
		job, ok := byID[sj.JobID]
		if !ok {
			job = domain.Job{ID: sj.JobID}
		}
		out = append(out, savedJobView{Job: job, SavedAt: sj.SavedAt})
	}
	writeJSON(w, out)
}

func (h SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		JobID int64 `json:"jobId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JobID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "jobId is required")
		return
	}

	if err := h.Local.SaveJob(r.Context(), req.JobID); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeJobSaved, map[string]any{"id": req.JobID}))
	writeJSON(w, map[string]any{"ok": true, "id": req.JobID})
}

func (h SavedHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/saved/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	if err := h.Local.UnsaveJob(r.Context(), id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeJobUnsaved, map[string]any{"id": id}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
