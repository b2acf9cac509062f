package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"jobdeck-engine/internal/auth"
	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/provider"
	"jobdeck-engine/internal/store"
)

// SessionHeader carries the token on authenticated requests.
const SessionHeader = "X-Session-Token"

type AuthHandler struct {
	Log      *slog.Logger
	Local    *store.Store
	Provider *provider.Client
	Hub      *events.Hub
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login tries the remote API first; when it is unreachable any credential
// pair is accepted and a token is minted locally. Keychain or store failures
// degrade to an in-memory session with a warning, never a refusal.
func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_credentials", "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := h.Provider.Login(ctx, req.Email, req.Password)
	mock := false
	if err != nil {
		h.Log.Warn("remote login unavailable, starting mock session", "error", err)
		mock = true
		token, err = auth.MintToken()
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
	}

	if err := auth.StoreToken(req.Email, token); err != nil {
		h.Log.Warn("keychain unavailable, session token not persisted", "error", err)
	}
	sess := domain.Session{Token: token, Email: req.Email, CreatedAt: time.Now().UTC()}
	if err := h.Local.InsertSession(r.Context(), sess); err != nil {
		h.Log.Warn("session not persisted", "error", err)
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeSessionStarted, map[string]any{"email": req.Email, "mock": mock}))
	writeJSON(w, map[string]any{"token": token, "email": req.Email, "mock": mock})
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.Header.Get(SessionHeader))
	if token == "" {
		WriteError(w, r, http.StatusUnauthorized, "no_session", "missing "+SessionHeader)
		return
	}

	sess, ok, err := h.Local.GetSession(r.Context(), token)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if ok {
		if err := auth.DeleteToken(sess.Email); err != nil {
			h.Log.Warn("keychain token not removed", "error", err)
		}
		if err := h.Local.DeleteSession(r.Context(), token); err != nil {
			WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
			return
		}
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.Make(reqID, events.TypeSessionEnded, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.Header.Get(SessionHeader))
	if token == "" {
		WriteError(w, r, http.StatusUnauthorized, "no_session", "missing "+SessionHeader)
		return
	}

	sess, ok, err := h.Local.GetSession(r.Context(), token)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if !ok {
		WriteError(w, r, http.StatusUnauthorized, "no_session", "unknown session token")
		return
	}
	writeJSON(w, sess)
}
