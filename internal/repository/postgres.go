package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"locations-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// DB is the slice of pgxpool.Pool the repository needs. Declared as an interface so
// tests can substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements the location tree store on PostgreSQL. All reads, no
// writes; seeding is owned by cmd/importer.
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const nodeColumns = "id, name, depth, parent_location_id, state_id"

func scanNodes(rows pgx.Rows) ([]models.GeoNode, error) {
	defer rows.Close()

	var nodes []models.GeoNode
	for rows.Next() {
		var n models.GeoNode
		if err := rows.Scan(&n.ID, &n.Name, &n.Depth, &n.ParentLocationID, &n.StateID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return nodes, nil
}

// SearchNodesByTokens returns nodes whose name contains any of the given tokens,
// compared case- and accent-insensitively. Tokens must already be normalized by the
// caller. Results come back in id order, capped at limit.
func (r *Repository) SearchNodesByTokens(ctx context.Context, tokens []string, limit int) ([]models.GeoNode, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	conds := make([]string, len(tokens))
	args := make([]any, 0, len(tokens)+1)
	for i, tok := range tokens {
		conds[i] = fmt.Sprintf("lower(unaccent(name)) LIKE '%%' || $%d || '%%'", i+1)
		args = append(args, tok)
	}
	args = append(args, limit)

	sql := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE %s
		ORDER BY id
		LIMIT $%d
	`, nodeColumns, strings.Join(conds, " OR "), len(tokens)+1)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute token search: %w", err)
	}
	return scanNodes(rows)
}

// GetNodesByIDs fetches nodes by id, in id order.
func (r *Repository) GetNodesByIDs(ctx context.Context, ids []int) ([]models.GeoNode, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql := fmt.Sprintf("SELECT %s FROM locations WHERE id = ANY($1) ORDER BY id", nodeColumns)
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch nodes by ids: %w", err)
	}
	return scanNodes(rows)
}

// GetNodesByParentIDs fetches the direct children of all given parents in one
// round trip.
func (r *Repository) GetNodesByParentIDs(ctx context.Context, parentIDs []int) ([]models.GeoNode, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	sql := fmt.Sprintf("SELECT %s FROM locations WHERE parent_location_id = ANY($1) ORDER BY id", nodeColumns)
	rows, err := r.db.Query(ctx, sql, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch nodes by parents: %w", err)
	}
	return scanNodes(rows)
}

// GetNodesByDepthAndState fetches all nodes at a depth belonging to a state.
func (r *Repository) GetNodesByDepthAndState(ctx context.Context, depth, stateID int) ([]models.GeoNode, error) {
	sql := fmt.Sprintf("SELECT %s FROM locations WHERE depth = $1 AND state_id = $2 ORDER BY id", nodeColumns)
	rows, err := r.db.Query(ctx, sql, depth, stateID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch nodes by depth and state: %w", err)
	}
	return scanNodes(rows)
}

// GetNodesByDepthAndCountry fetches all nodes at a depth whose state belongs to the
// country, the broader fallback when a state-scoped lookup comes back empty.
func (r *Repository) GetNodesByDepthAndCountry(ctx context.Context, depth, countryID int) ([]models.GeoNode, error) {
	sql := fmt.Sprintf(`
		SELECT l.%s
		FROM locations l
		JOIN states s ON s.id = l.state_id
		WHERE l.depth = $1 AND s.country_id = $2
		ORDER BY l.id
	`, strings.ReplaceAll(nodeColumns, ", ", ", l."))
	rows, err := r.db.Query(ctx, sql, depth, countryID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch nodes by depth and country: %w", err)
	}
	return scanNodes(rows)
}

// GetStatesByCountry fetches all states of a country in id order.
func (r *Repository) GetStatesByCountry(ctx context.Context, countryID int) ([]models.State, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, country_id FROM states WHERE country_id = $1 ORDER BY id", countryID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch states by country: %w", err)
	}
	defer rows.Close()

	var states []models.State
	for rows.Next() {
		var s models.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CountryID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan state: %w", err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return states, nil
}

// GetStatesWithCountryByIDs fetches states joined with their country name, for
// breadcrumb display.
func (r *Repository) GetStatesWithCountryByIDs(ctx context.Context, ids []int) ([]models.StateInfo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, c.name
		FROM states s
		JOIN countries c ON c.id = s.country_id
		WHERE s.id = ANY($1)
		ORDER BY s.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch states with country: %w", err)
	}
	defer rows.Close()

	var infos []models.StateInfo
	for rows.Next() {
		var si models.StateInfo
		if err := rows.Scan(&si.ID, &si.Name, &si.CountryName); err != nil {
			return nil, fmt.Errorf("repository: failed to scan state info: %w", err)
		}
		infos = append(infos, si)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return infos, nil
}

// GetCountryByISOCode fetches a country by its alpha-2 code, case-insensitively.
// Returns (nil, nil) when no country carries the code.
func (r *Repository) GetCountryByISOCode(ctx context.Context, code string) (*models.Country, error) {
	var c models.Country
	err := r.db.QueryRow(ctx,
		"SELECT id, name, iso_code FROM countries WHERE upper(iso_code) = upper($1)", code,
	).Scan(&c.ID, &c.Name, &c.ISOCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to fetch country by iso code: %w", err)
	}
	return &c, nil
}

// GetAllCountries fetches every country in id order.
func (r *Repository) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, iso_code FROM countries ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch countries: %w", err)
	}
	defer rows.Close()

	var countries []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.ISOCode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return countries, nil
}
