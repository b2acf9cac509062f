package httpapi

import (
	"net/http"
	"time"

	"jobdeck-engine/internal/events"
)

type HealthHandler struct {
	Hub       *events.Hub
	StartedAt time.Time
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":          true,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"uptime_s":    int(time.Since(h.StartedAt).Seconds()),
		"subscribers": h.Hub.Subscribers(),
	})
}
