package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/state"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
	UI          *state.Store
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	writeJSON(w, cur)
}

func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: "+err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_body", "invalid JSON: trailing data")
		return
	}

	normalized, vr := config.NormalizeAndValidate(incoming)
	if !vr.OK() {
		// structured errors so the UI can render them
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, normalized); err != nil {
		WriteError(w, r, http.StatusBadRequest, "save_failed", err.Error())
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	h.CfgVal.Store(saved)

	// the one hot-reloadable knob the state container carries
	if h.UI != nil {
		h.UI.SetQuietPeriod(saved.DebounceDelay())
	}

	writeJSON(w, saved)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.UserCfgPath)
	writeJSON(w, map[string]any{"path": abs})
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	_, vr := config.NormalizeAndValidate(cur)
	writeJSON(w, vr)
}
