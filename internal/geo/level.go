package geo

import (
	"strings"

	"locations-api/internal/models"
)

// Candidate is a named record considered for a level match.
type Candidate struct {
	ID   int
	Name string
}

// MatchLevel resolves a target name against a candidate set: an exact pass
// (normalized equality) over all candidates, then a fuzzy pass (substring
// containment either direction). The first candidate in store order wins; no
// scoring or ranking is applied, so callers must not reorder the set.
func MatchLevel(target string, candidates []Candidate) *models.LevelMatch {
	if m := MatchLevelExact(target, candidates); m != nil {
		return m
	}
	return MatchLevelFuzzy(target, candidates)
}

// MatchLevelExact returns the first candidate whose normalized name equals the
// normalized target, or nil.
func MatchLevelExact(target string, candidates []Candidate) *models.LevelMatch {
	t := Normalize(target)
	if t == "" {
		return nil
	}
	for _, c := range candidates {
		if Normalize(c.Name) == t {
			return &models.LevelMatch{ID: c.ID, Name: c.Name, Status: models.MatchExact}
		}
	}
	return nil
}

// MatchLevelFuzzy returns the first candidate whose normalized name contains, or
// is contained in, the normalized target. Candidate names under 2 characters are
// skipped; they would substring-match almost anything.
func MatchLevelFuzzy(target string, candidates []Candidate) *models.LevelMatch {
	t := Normalize(target)
	if t == "" {
		return nil
	}
	for _, c := range candidates {
		n := Normalize(c.Name)
		if len(n) < 2 {
			continue
		}
		if strings.Contains(t, n) || strings.Contains(n, t) {
			return &models.LevelMatch{ID: c.ID, Name: c.Name, Status: models.MatchFuzzy}
		}
	}
	return nil
}
