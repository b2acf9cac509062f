package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs
// srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Jobs
	jh := JobsHandler{UI: d.UI}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /jobs/{id}
	}))

	// Companies and facet taxonomy
	ch := CompaniesHandler{UI: d.UI}
	mux.HandleFunc("/companies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.List,
	}))
	fh := FacetsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/facets", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Get,
	}))

	// Saved jobs
	sh := SavedHandler{UI: d.UI, Local: d.Local, Hub: d.Hub}
	mux.HandleFunc("/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  sh.List,
		http.MethodPost: sh.Save,
	}))
	mux.HandleFunc("/saved/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: sh.DeleteByPath, // expects /saved/{id}
	}))

	// Applications + mock resume upload
	ah := ApplicationsHandler{Log: d.Log, Local: d.Local, Provider: d.Provider, Hub: d.Hub}
	mux.HandleFunc("/applications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  ah.List,
		http.MethodPost: ah.Submit,
	}))
	mux.HandleFunc("/resumes/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.GetResumeByPath, // expects /resumes/{key}
	}))

	// Mock auth
	authH := AuthHandler{Log: d.Log, Local: d.Local, Provider: d.Provider, Hub: d.Hub}
	mux.HandleFunc("/auth/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: authH.Login,
	}))
	mux.HandleFunc("/auth/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: authH.Logout,
	}))
	mux.HandleFunc("/auth/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: authH.Session,
	}))

	// Profile
	ph := ProfileHandler{Local: d.Local, Hub: d.Hub}
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
		http.MethodPut: ph.Put,
	}))

	// UI state container (search input, facet selection, derived list)
	st := StateHandler{UI: d.UI}
	mux.HandleFunc("/state", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: st.Get,
	}))
	mux.HandleFunc("/state/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: st.Search,
	}))
	mux.HandleFunc("/state/filters", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   st.ToggleFilter,
		http.MethodDelete: st.ClearFilters,
	}))
	mux.HandleFunc("/state/visible", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: st.Visible,
	}))

	// Config
	cfgH := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg, UI: d.UI}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgH.Get,
		http.MethodPut: cfgH.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgH.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgH.Validate,
	}))

	// Manual refresh
	rh := RefreshHandler{Refresh: d.Refresh}
	mux.HandleFunc("/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health + local admin
	hh := HealthHandler{Hub: d.Hub, StartedAt: d.StartedAt}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))
	dbh := DBHandler{Local: d.Local}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	return mux
}
