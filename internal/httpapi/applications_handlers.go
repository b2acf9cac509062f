package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobdeck-engine/internal/auth"
	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/provider"
	"jobdeck-engine/internal/store"
)

// uploaded resume ceiling; anything bigger is rejected, not truncated
const maxResumeBytes = 5 << 20

type ApplicationsHandler struct {
	Log      *slog.Logger
	Local    *store.Store
	Provider *provider.Client
	Hub      *events.Hub
}

func (h ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Local.ListApplications(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	writeJSON(w, apps)
}

// Submit accepts either a JSON body or a multipart form with a resume file.
// The remote API is tried first; when it is unreachable the application is
// queued locally; the submission itself never fails on a dead backend.
func (h ApplicationsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	app, ok := h.decode(w, r)
	if !ok {
		return
	}

	if app.JobID <= 0 || strings.TrimSpace(app.Name) == "" || strings.TrimSpace(app.Email) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "jobId, name, and email are required")
		return
	}

	app.Status = store.StatusSubmitted
	app.SubmittedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	if err := h.Provider.SubmitApplication(ctx, app); err != nil {
		h.Log.Warn("remote submit failed, queueing locally", "job_id", app.JobID, "error", err)
		app.Status = store.StatusQueuedLocal
	}

	saved, err := h.Local.InsertApplication(r.Context(), app)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeApplicationSubmitted,
		map[string]any{"id": saved.ID, "jobId": saved.JobID, "status": saved.Status}))
	writeJSON(w, saved)
}

// decode reads an application out of JSON or multipart. Multipart carries the
// resume file; the blob stays local (mock upload, nothing leaves the machine).
func (h ApplicationsHandler) decode(w http.ResponseWriter, r *http.Request) (domain.Application, bool) {
	var app domain.Application

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
			WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
			return domain.Application{}, false
		}
		return app, true
	}

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid multipart form: "+err.Error())
		return domain.Application{}, false
	}

	app.JobID, _ = strconv.ParseInt(r.FormValue("jobId"), 10, 64)
	app.Name = r.FormValue("name")
	app.Email = r.FormValue("email")
	app.CoverLetter = r.FormValue("coverLetter")

	file, header, err := r.FormFile("resume")
	if err == http.ErrMissingFile {
		return app, true
	}
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "resume: "+err.Error())
		return domain.Application{}, false
	}
	defer file.Close()

	if header.Size > maxResumeBytes {
		WriteError(w, r, http.StatusRequestEntityTooLarge, "resume_too_large", "resume exceeds 5MB")
		return domain.Application{}, false
	}

	b, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "resume: "+err.Error())
		return domain.Application{}, false
	}

	key, err := auth.MintToken()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return domain.Application{}, false
	}

	ct := header.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	if err := h.Local.PutResume(r.Context(), store.Resume{
		Key: key, Filename: header.Filename, ContentType: ct, Bytes: b,
	}); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return domain.Application{}, false
	}
	app.ResumeKey = key

	return app, true
}

// GetResumeByPath serves an uploaded resume back to the UI.
func (h ApplicationsHandler) GetResumeByPath(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/resumes/")
	if key == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "missing resume key")
		return
	}

	res, ok, err := h.Local.GetResume(r.Context(), key)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such resume")
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	// FormatMediaType quotes and escapes the client-supplied filename.
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	_, _ = w.Write(res.Bytes)
}
