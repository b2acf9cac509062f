package domain

type Company struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Stage     string   `json:"stage"`
	Funding   string   `json:"funding,omitempty"`
	Industry  string   `json:"industry,omitempty"`
	Size      string   `json:"size,omitempty"`
	About     string   `json:"about,omitempty"`
	OpenRoles int      `json:"openRoles"`
	Tags      []string `json:"tags,omitempty"`
}

// FacetGroup is one category of the fixed facet taxonomy the UI renders as
// toggle controls. Options are enumerated, not computed.
type FacetGroup struct {
	Category string   `json:"category"`
	Options  []string `json:"options"`
}
