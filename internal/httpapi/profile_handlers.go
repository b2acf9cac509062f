package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/store"
)

type ProfileHandler struct {
	Local *store.Store
	Hub   *events.Hub
}

func (h ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Local.GetProfile(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeJSON(w, p)
}

func (h ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var p domain.Profile
	if err := dec.Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(p.Email) != "" && !strings.Contains(p.Email, "@") {
		WriteError(w, r, http.StatusBadRequest, "invalid_email", "email must contain @")
		return
	}

	if err := h.Local.PutProfile(r.Context(), p); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeProfileUpdated, nil))
	writeJSON(w, p)
}
