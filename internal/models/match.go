package models

// MatchStatus reports how a level was matched. "No match" is a nil *LevelMatch,
// not a third status value.
type MatchStatus string

const (
	MatchExact MatchStatus = "exact"
	MatchFuzzy MatchStatus = "fuzzy"
)

// LevelMatch is the outcome of matching one level of the hierarchy.
type LevelMatch struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Status MatchStatus `json:"status"`
}

// MatchResult is the per-level outcome of resolving a NormalizedPlace against the
// location tree. DeepestLocationID is the id of the most specific matched level
// (depth 5, else 4, else 3) and is what callers persist on a property record.
type MatchResult struct {
	Country           *LevelMatch `json:"country"`
	State             *LevelMatch `json:"state"`
	Location          *LevelMatch `json:"location"`
	LocationDepth4    *LevelMatch `json:"location_depth_4"`
	LocationDepth5    *LevelMatch `json:"location_depth_5"`
	DeepestLocationID *int        `json:"deepest_location_id"`
}

// SearchResult is one autocomplete hit. Display is the breadcrumb built from the
// node's ancestor chain, e.g. "Palermo, CABA, Argentina"; it is never stored.
type SearchResult struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Depth   int    `json:"depth"`
	Display string `json:"display"`
}
