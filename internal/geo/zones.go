package geo

import "strings"

// Google hands back "Buenos Aires" (or "Provincia de Buenos Aires") for a province
// that our tree splits into several state records: the three GBA belts around the
// capital, La Plata, the Atlantic coast and a catch-all interior. A name match
// cannot tell those apart, so the orchestrator classifies the point geometrically
// with the zone table below.
//
// The fixed ids here mirror the reference seed data and must stay in sync with it.
const (
	ArgentinaCountryID = 1

	CapitalFederalStateID      = 2
	ZonaNorteStateID           = 3
	ZonaOesteStateID           = 4
	ZonaSurStateID             = 5
	LaPlataStateID             = 6
	CostaAtlanticaStateID      = 7
	BuenosAiresInteriorStateID = 8
)

// Zone is a coarse rectangular sub-region of Buenos Aires province. Rectangles are
// an approximation; they only need to pick the right one of ~5 administrative
// buckets, not survey-grade boundaries.
type Zone struct {
	Name    string
	StateID int
	LonMin  float64
	LonMax  float64
	LatMin  float64
	LatMax  float64
}

// BuenosAiresZones is ordered: when boxes overlap the first containing zone wins,
// same first-match-wins rule as MatchLevel.
var BuenosAiresZones = []Zone{
	{Name: "Zona Norte", StateID: ZonaNorteStateID, LonMin: -58.80, LonMax: -58.35, LatMin: -34.56, LatMax: -34.26},
	{Name: "Zona Oeste", StateID: ZonaOesteStateID, LonMin: -59.00, LonMax: -58.50, LatMin: -34.90, LatMax: -34.56},
	{Name: "Zona Sur", StateID: ZonaSurStateID, LonMin: -58.50, LonMax: -58.10, LatMin: -35.10, LatMax: -34.60},
	{Name: "La Plata", StateID: LaPlataStateID, LonMin: -58.15, LonMax: -57.70, LatMin: -35.05, LatMax: -34.75},
	{Name: "Costa Atlantica", StateID: CostaAtlanticaStateID, LonMin: -58.60, LonMax: -56.60, LatMin: -39.10, LatMax: -36.30},
}

// ResolveBuenosAiresZone maps a coordinate to one of the Buenos Aires province
// state records. Points outside every box fall back to the interior record.
func ResolveBuenosAiresZone(lat, lng float64) int {
	for _, z := range BuenosAiresZones {
		if lng >= z.LonMin && lng <= z.LonMax && lat >= z.LatMin && lat <= z.LatMax {
			return z.StateID
		}
	}
	return BuenosAiresInteriorStateID
}

// ZoneNameForState returns the display name of a zone state id, including the two
// fixed records that have no bounding box.
func ZoneNameForState(stateID int) string {
	switch stateID {
	case CapitalFederalStateID:
		return "Capital Federal"
	case BuenosAiresInteriorStateID:
		return "Interior de Buenos Aires"
	}
	for _, z := range BuenosAiresZones {
		if z.StateID == stateID {
			return z.Name
		}
	}
	return ""
}

// IsCapitalFederal reports whether a provider state name refers to the autonomous
// city (CABA) rather than the surrounding province.
func IsCapitalFederal(name string) bool {
	n := Normalize(name)
	return strings.Contains(n, "capital federal") ||
		strings.Contains(n, "ciudad autonoma") ||
		n == "caba"
}

// IsBuenosAiresProvince reports whether a provider state name refers to Buenos
// Aires province, which needs geometric disambiguation.
func IsBuenosAiresProvince(name string) bool {
	return strings.Contains(Normalize(name), "buenos aires") && !IsCapitalFederal(name)
}
