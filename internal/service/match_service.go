package service

import (
	"context"
	"fmt"
	"strings"

	"locations-api/internal/geo"
	"locations-api/internal/models"
)

// MatchRepository is the slice of the store the matcher needs.
type MatchRepository interface {
	GetCountryByISOCode(ctx context.Context, code string) (*models.Country, error)
	GetAllCountries(ctx context.Context) ([]models.Country, error)
	GetStatesByCountry(ctx context.Context, countryID int) ([]models.State, error)
	GetNodesByDepthAndState(ctx context.Context, depth, stateID int) ([]models.GeoNode, error)
	GetNodesByDepthAndCountry(ctx context.Context, depth, countryID int) ([]models.GeoNode, error)
	GetNodesByParentIDs(ctx context.Context, parentIDs []int) ([]models.GeoNode, error)
}

// MatchService resolves a normalized provider place against the location tree,
// level by level: country, state, then depth 3 through 5. Each stage is gated on
// the previous one; a miss at any stage is a valid partial result, not an error.
type MatchService struct {
	repo MatchRepository
}

// NewMatchService creates a new match service
func NewMatchService(repo MatchRepository) *MatchService {
	return &MatchService{repo: repo}
}

// fieldCandidate is one provider address field considered as a location name, in
// coarse-to-fine priority order. Priority is the field's original index so that
// deeper stages can restrict themselves to strictly finer fields than the one a
// shallower stage consumed.
type fieldCandidate struct {
	priority int
	value    string
}

func placeCandidates(place models.NormalizedPlace) []fieldCandidate {
	fields := []string{
		place.AdministrativeAreaLevel2,
		place.Locality,
		place.SublocalityLevel1,
		place.Sublocality,
		place.Neighborhood,
	}
	var cands []fieldCandidate
	for i, v := range fields {
		if strings.TrimSpace(v) != "" {
			cands = append(cands, fieldCandidate{priority: i, value: v})
		}
	}
	return cands
}

func nodeCandidates(nodes []models.GeoNode) []geo.Candidate {
	cands := make([]geo.Candidate, len(nodes))
	for i, n := range nodes {
		cands[i] = geo.Candidate{ID: n.ID, Name: n.Name}
	}
	return cands
}

// matchDepth runs the two-pass procedure of the depth stages: an exact pass
// across ALL field candidates in priority order, then a fuzzy pass across all of
// them. This is deliberately not per-candidate exact-then-fuzzy; an exact match
// on a finer field beats a fuzzy match on a coarser one. Returns the match and
// the index of the winning candidate within cands, or (nil, -1).
func matchDepth(cands []fieldCandidate, nodes []models.GeoNode) (*models.LevelMatch, int) {
	nc := nodeCandidates(nodes)

	for i, fc := range cands {
		if m := geo.MatchLevelExact(fc.value, nc); m != nil {
			return m, i
		}
	}
	for i, fc := range cands {
		if m := geo.MatchLevelFuzzy(fc.value, nc); m != nil {
			return m, i
		}
	}
	return nil, -1
}

// Match resolves place against the tree and reports per-level outcomes. The only
// short-circuits are a missing country and a missing state name, both of which
// return the partial result accumulated so far. Store failures abort the whole
// call; no partial result is synthesized on top of a broken query.
func (s *MatchService) Match(ctx context.Context, place models.NormalizedPlace) (models.MatchResult, error) {
	var result models.MatchResult

	countryID, err := s.matchCountry(ctx, place, &result)
	if err != nil {
		return models.MatchResult{}, err
	}
	if result.Country == nil {
		return result, nil
	}

	stateID, err := s.matchState(ctx, place, countryID, &result)
	if err != nil {
		return models.MatchResult{}, err
	}
	if result.State == nil {
		return result, nil
	}

	if err := s.matchDepths(ctx, place, countryID, stateID, &result); err != nil {
		return models.MatchResult{}, err
	}

	result.DeepestLocationID = deepestLocationID(result)
	return result, nil
}

// matchCountry fills result.Country and returns the matched country id. The ISO
// code, when present and known, is authoritative and needs no name comparison.
func (s *MatchService) matchCountry(ctx context.Context, place models.NormalizedPlace, result *models.MatchResult) (int, error) {
	if place.CountryCode != "" {
		country, err := s.repo.GetCountryByISOCode(ctx, place.CountryCode)
		if err != nil {
			return 0, fmt.Errorf("service: failed to look up country code: %w", err)
		}
		if country != nil {
			result.Country = &models.LevelMatch{ID: country.ID, Name: country.Name, Status: models.MatchExact}
			return country.ID, nil
		}
	}

	if strings.TrimSpace(place.Country) == "" {
		return 0, nil
	}

	countries, err := s.repo.GetAllCountries(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to fetch countries: %w", err)
	}
	cands := make([]geo.Candidate, len(countries))
	for i, c := range countries {
		cands[i] = geo.Candidate{ID: c.ID, Name: c.Name}
	}
	if m := geo.MatchLevel(place.Country, cands); m != nil {
		result.Country = m
		return m.ID, nil
	}
	return 0, nil
}

// matchState fills result.State and returns the matched state id. Argentina gets
// two special cases: the autonomous city maps straight to a fixed id, and the
// ambiguous Buenos Aires province name is resolved geometrically from the point.
func (s *MatchService) matchState(ctx context.Context, place models.NormalizedPlace, countryID int, result *models.MatchResult) (int, error) {
	name := place.AdministrativeAreaLevel1
	if strings.TrimSpace(name) == "" {
		return 0, nil
	}

	if countryID == geo.ArgentinaCountryID {
		if geo.IsCapitalFederal(name) {
			result.State = &models.LevelMatch{
				ID:     geo.CapitalFederalStateID,
				Name:   geo.ZoneNameForState(geo.CapitalFederalStateID),
				Status: models.MatchExact,
			}
			return geo.CapitalFederalStateID, nil
		}
		if geo.IsBuenosAiresProvince(name) {
			stateID := geo.ResolveBuenosAiresZone(place.Lat, place.Lng)
			result.State = &models.LevelMatch{
				ID:     stateID,
				Name:   geo.ZoneNameForState(stateID),
				Status: models.MatchExact,
			}
			return stateID, nil
		}
	}

	states, err := s.repo.GetStatesByCountry(ctx, countryID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to fetch states: %w", err)
	}
	cands := make([]geo.Candidate, len(states))
	for i, st := range states {
		cands[i] = geo.Candidate{ID: st.ID, Name: st.Name}
	}
	if m := geo.MatchLevel(name, cands); m != nil {
		result.State = m
		return m.ID, nil
	}
	return 0, nil
}

// matchDepths runs stages 3 through 5. Each deeper stage restricts itself to field
// candidates strictly finer than the one the previous stage consumed, so a single
// provider field never satisfies two depths.
func (s *MatchService) matchDepths(ctx context.Context, place models.NormalizedPlace, countryID, stateID int, result *models.MatchResult) error {
	cands := placeCandidates(place)
	if len(cands) == 0 {
		return nil
	}

	nodes, err := s.repo.GetNodesByDepthAndState(ctx, 3, stateID)
	if err != nil {
		return fmt.Errorf("service: failed to fetch depth-3 nodes: %w", err)
	}
	if len(nodes) == 0 {
		// State has no seeded localities; widen to the whole country.
		nodes, err = s.repo.GetNodesByDepthAndCountry(ctx, 3, countryID)
		if err != nil {
			return fmt.Errorf("service: failed to fetch country depth-3 nodes: %w", err)
		}
	}

	match3, idx3 := matchDepth(cands, nodes)
	if match3 == nil {
		return nil
	}
	result.Location = match3

	remaining := cands[idx3+1:]
	if len(remaining) == 0 {
		return nil
	}
	children, err := s.repo.GetNodesByParentIDs(ctx, []int{match3.ID})
	if err != nil {
		return fmt.Errorf("service: failed to fetch depth-4 nodes: %w", err)
	}
	match4, idx4 := matchDepth(remaining, children)
	if match4 == nil {
		return nil
	}
	result.LocationDepth4 = match4

	rest := remaining[idx4+1:]
	if len(rest) == 0 {
		return nil
	}
	children, err = s.repo.GetNodesByParentIDs(ctx, []int{match4.ID})
	if err != nil {
		return fmt.Errorf("service: failed to fetch depth-5 nodes: %w", err)
	}
	match5, _ := matchDepth(rest, children)
	if match5 != nil {
		result.LocationDepth5 = match5
	}
	return nil
}

// deepestLocationID picks the most specific matched level. The stages above only
// ever fill a deeper level when the shallower one matched, so this never skips a
// populated level.
func deepestLocationID(result models.MatchResult) *int {
	switch {
	case result.LocationDepth5 != nil:
		return &result.LocationDepth5.ID
	case result.LocationDepth4 != nil:
		return &result.LocationDepth4.ID
	case result.Location != nil:
		return &result.Location.ID
	}
	return nil
}
