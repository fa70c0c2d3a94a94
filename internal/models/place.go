package models

// AddressComponent is one raw component from the mapping provider, kept only for
// audit/debug passthrough. The matcher never reads it.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// NormalizedPlace is the provider-agnostic shape the matcher consumes. An upstream
// collaborator maps the provider payload into these fields; empty string means the
// provider did not supply that component.
type NormalizedPlace struct {
	Locality                 string  `json:"locality"`
	AdministrativeAreaLevel1 string  `json:"administrative_area_level_1"`
	AdministrativeAreaLevel2 string  `json:"administrative_area_level_2"`
	Sublocality              string  `json:"sublocality"`
	SublocalityLevel1        string  `json:"sublocality_level_1"`
	SublocalityLevel2        string  `json:"sublocality_level_2"`
	Neighborhood             string  `json:"neighborhood"`
	Country                  string  `json:"country"`
	CountryCode              string  `json:"country_code"`
	Lat                      float64 `json:"lat"`
	Lng                      float64 `json:"lng"`

	RawComponents []AddressComponent `json:"raw_components,omitempty"`
}
