package models

// GeoNode is a single node in the location tree. Depth runs from 1 (country-level
// placeholder) down to 5 (finest subdivision); depth 3 is the primary locality level.
// ParentLocationID links nodes into a forest; nothing at the data layer prevents a
// cycle, so traversals keep a visited set.
type GeoNode struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Depth            int    `json:"depth"`
	ParentLocationID *int   `json:"parent_location_id"`
	StateID          *int   `json:"state_id"`
}

// State is a province/state-equivalent region.
type State struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"country_id"`
}

// Country holds the ISO 3166-1 alpha-2 code in uppercase.
type Country struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	ISOCode string `json:"iso_code"`
}

// StateInfo is a state joined with its country name, used for display chains.
type StateInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CountryName string `json:"country_name"`
}
