package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"locations-api/internal/geo"
	"locations-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Over-fetch margin on the store query, so that ambiguity suppression and the
// relevance filter still leave enough rows to fill the requested limit.
const searchOverfetch = 40

// SearchRepository is the slice of the store the search needs.
type SearchRepository interface {
	SearchNodesByTokens(ctx context.Context, tokens []string, limit int) ([]models.GeoNode, error)
	GetNodesByIDs(ctx context.Context, ids []int) ([]models.GeoNode, error)
	GetNodesByParentIDs(ctx context.Context, parentIDs []int) ([]models.GeoNode, error)
	GetStatesWithCountryByIDs(ctx context.Context, ids []int) ([]models.StateInfo, error)
}

// SearchService serves the location autocomplete: it finds name-matching nodes,
// rebuilds each node's ancestor chain bottom-up for display, and filters out
// nodes that are too coarse or not relevant to every query token.
type SearchService struct {
	repo SearchRepository
}

// NewSearchService creates a new search service
func NewSearchService(repo SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search returns up to limit nodes matching the query, in store (id) order, each
// with a human-readable breadcrumb. Queries and tokens under 2 characters are
// rejected with an empty result before touching the store.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return []models.SearchResult{}, nil
	}

	var tokens []string
	for _, tok := range strings.Fields(geo.Normalize(query)) {
		if utf8.RuneCountInString(tok) >= 2 {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return []models.SearchResult{}, nil
	}

	nodes, err := s.repo.SearchNodesByTokens(ctx, tokens, limit+searchOverfetch)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search locations: %w", err)
	}
	if len(nodes) == 0 {
		return []models.SearchResult{}, nil
	}

	nodes, err = s.suppressAmbiguous(ctx, nodes)
	if err != nil {
		return nil, err
	}

	ancestors, err := s.resolveAncestors(ctx, nodes)
	if err != nil {
		return nil, err
	}

	states, err := s.resolveStates(ctx, nodes, ancestors)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, limit)
	for _, n := range nodes {
		display, searchable := buildDisplay(n, ancestors, states)
		if !containsAllTokens(searchable, tokens) {
			continue
		}
		results = append(results, models.SearchResult{
			ID:      n.ID,
			Name:    n.Name,
			Depth:   n.Depth,
			Display: display,
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// suppressAmbiguous drops depth-3 hits that have 2 or more direct children: such a
// node is a coarse container and its child localities are the better standalone
// results.
func (s *SearchService) suppressAmbiguous(ctx context.Context, nodes []models.GeoNode) ([]models.GeoNode, error) {
	var depth3IDs []int
	for _, n := range nodes {
		if n.Depth == 3 {
			depth3IDs = append(depth3IDs, n.ID)
		}
	}
	if len(depth3IDs) == 0 {
		return nodes, nil
	}

	children, err := s.repo.GetNodesByParentIDs(ctx, depth3IDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count location children: %w", err)
	}
	childCount := make(map[int]int)
	for _, c := range children {
		if c.ParentLocationID != nil {
			childCount[*c.ParentLocationID]++
		}
	}

	kept := nodes[:0]
	for _, n := range nodes {
		if n.Depth == 3 && childCount[n.ID] >= 2 {
			continue
		}
		kept = append(kept, n)
	}
	return kept, nil
}

// resolveAncestors walks parent pointers upward in batched rounds: fetch the
// current frontier of unknown parent ids, collect the parents those rows point at,
// repeat. Round trips are bounded by the tree's height, and ids are requested at
// most once so a cyclic chain cannot loop the walk.
func (s *SearchService) resolveAncestors(ctx context.Context, nodes []models.GeoNode) (map[int]models.GeoNode, error) {
	known := make(map[int]models.GeoNode, len(nodes))
	requested := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = n
		requested[n.ID] = true
	}

	var frontier []int
	for _, n := range nodes {
		if n.ParentLocationID != nil && !requested[*n.ParentLocationID] {
			requested[*n.ParentLocationID] = true
			frontier = append(frontier, *n.ParentLocationID)
		}
	}

	for len(frontier) > 0 {
		batch, err := s.repo.GetNodesByIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("service: failed to fetch location ancestors: %w", err)
		}
		if len(batch) == 0 {
			break
		}
		frontier = frontier[:0]
		for _, n := range batch {
			known[n.ID] = n
			if n.ParentLocationID != nil && !requested[*n.ParentLocationID] {
				requested[*n.ParentLocationID] = true
				frontier = append(frontier, *n.ParentLocationID)
			}
		}
	}
	return known, nil
}

// resolveStates batch-fetches state and country names for every state referenced
// by a result or one of its ancestors.
func (s *SearchService) resolveStates(ctx context.Context, nodes []models.GeoNode, ancestors map[int]models.GeoNode) (map[int]models.StateInfo, error) {
	seen := make(map[int]bool)
	var ids []int
	add := func(stateID *int) {
		if stateID != nil && !seen[*stateID] {
			seen[*stateID] = true
			ids = append(ids, *stateID)
		}
	}
	for _, n := range nodes {
		add(n.StateID)
	}
	for _, n := range ancestors {
		add(n.StateID)
	}
	if len(ids) == 0 {
		return map[int]models.StateInfo{}, nil
	}
	// Map iteration above is unordered; keep the query deterministic.
	sort.Ints(ids)

	infos, err := s.repo.GetStatesWithCountryByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch state names: %w", err)
	}
	states := make(map[int]models.StateInfo, len(infos))
	for _, si := range infos {
		states[si.ID] = si
	}
	return states, nil
}

// buildDisplay walks from the node's parent upward, collecting names, then closes
// the breadcrumb with the state and country. It returns the breadcrumb (without
// the node's own name) and the full searchable text (with it). The state name is
// skipped when it already appears in the chain; "Palermo, Palermo, Argentina"
// reads like a bug to users.
func buildDisplay(n models.GeoNode, ancestors map[int]models.GeoNode, states map[int]models.StateInfo) (display, searchable string) {
	var chain []string
	visited := map[int]bool{n.ID: true}
	stateID := n.StateID

	parent := n.ParentLocationID
	for parent != nil {
		if visited[*parent] {
			log.Warn().Int("location_id", n.ID).Int("ancestor_id", *parent).
				Msg("cycle detected in location ancestry")
			break
		}
		visited[*parent] = true
		p, ok := ancestors[*parent]
		if !ok {
			break
		}
		chain = append(chain, p.Name)
		if stateID == nil {
			stateID = p.StateID
		}
		parent = p.ParentLocationID
	}

	if stateID != nil {
		if si, ok := states[*stateID]; ok {
			if !nameInChain(si.Name, n.Name, chain) {
				chain = append(chain, si.Name)
			}
			chain = append(chain, si.CountryName)
		}
	}

	display = strings.Join(chain, ", ")
	searchable = geo.Normalize(n.Name + " " + display)
	return display, searchable
}

func nameInChain(name, own string, chain []string) bool {
	target := geo.Normalize(name)
	if geo.Normalize(own) == target {
		return true
	}
	for _, c := range chain {
		if geo.Normalize(c) == target {
			return true
		}
	}
	return false
}

// containsAllTokens requires every query token to appear somewhere in the node's
// name or breadcrumb, so "palermo caba" can match a node named "Palermo" whose
// chain carries "CABA".
func containsAllTokens(searchable string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(searchable, tok) {
			return false
		}
	}
	return true
}
