package events

import (
	"encoding/json"
	"time"
)

// Event types published by the engine.
const (
	TypePing                 = "ping"
	TypeJobsRefreshed        = "jobs_refreshed"
	TypeSearchCommitted      = "search_committed"
	TypeFiltersChanged       = "filters_changed"
	TypeJobSaved             = "job_saved"
	TypeJobUnsaved           = "job_unsaved"
	TypeApplicationSubmitted = "application_submitted"
	TypeProfileUpdated       = "profile_updated"
	TypeSessionStarted       = "session_started"
	TypeSessionEnded         = "session_ended"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make renders an event envelope as the JSON line pushed over SSE.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
