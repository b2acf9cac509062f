package httpapi

import (
	"context"
	"net/http"
)

type RefreshHandler struct {
	Refresh func(ctx context.Context) (int, error)
}

// Run re-fetches the board on demand. A dead board is reported, not papered
// over; the caller already has the previous (or fallback) job list.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	count, err := h.Refresh(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "board_unreachable", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "jobs": count})
}
