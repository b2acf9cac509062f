package httpapi

import (
	"net"
	"net/http"

	"jobdeck-engine/internal/store"
)

type DBHandler struct {
	Local *store.Store
}

// Checkpoint flushes the WAL; local-only, for backup tooling.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "127.0.0.1" && host != "::1" && host != "localhost" {
		WriteError(w, r, http.StatusForbidden, "forbidden", "local requests only")
		return
	}

	if err := h.Local.Checkpoint(); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
