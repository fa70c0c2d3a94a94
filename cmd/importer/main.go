package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"locations-api/internal/config"

	"github.com/jackc/pgx/v5"
)

// Seed rows come in a single CSV with a kind column so one file can carry the
// whole reference tree:
//
//	kind,id,name,depth,parent_location_id,state_id,country_id,iso_code
//	country,1,Argentina,,,,,AR
//	state,3,Zona Norte,,,,1,
//	location,101,Palermo,3,,2,,
type countryRecord struct {
	ID      int
	Name    string
	ISOCode string
}

type stateRecord struct {
	ID        int
	Name      string
	CountryID int
}

type locationRecord struct {
	ID               int
	Name             string
	Depth            int
	ParentLocationID *int
	StateID          *int
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	countries, states, locations, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d countries, %d states, %d locations\n", len(countries), len(states), len(locations))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := createSchema(ctx, conn); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	if err := insertAll(ctx, conn, countries, states, locations); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Import completed successfully")
}

func parseCSV(path string) ([]countryRecord, []stateRecord, []locationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	var countries []countryRecord
	var states []stateRecord
	var locations []locationRecord

	for i, row := range rows {
		if i == 0 {
			// Header row
			continue
		}
		if len(row) != 8 {
			return nil, nil, nil, fmt.Errorf("row %d: expected 8 columns, got %d", i+1, len(row))
		}

		id, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("row %d: invalid id %q", i+1, row[1])
		}
		name := row[2]

		switch row[0] {
		case "country":
			countries = append(countries, countryRecord{ID: id, Name: name, ISOCode: row[7]})
		case "state":
			countryID, err := strconv.Atoi(row[6])
			if err != nil {
				return nil, nil, nil, fmt.Errorf("row %d: invalid country_id %q", i+1, row[6])
			}
			states = append(states, stateRecord{ID: id, Name: name, CountryID: countryID})
		case "location":
			depth, err := strconv.Atoi(row[3])
			if err != nil {
				return nil, nil, nil, fmt.Errorf("row %d: invalid depth %q", i+1, row[3])
			}
			loc := locationRecord{ID: id, Name: name, Depth: depth}
			if row[4] != "" {
				parentID, err := strconv.Atoi(row[4])
				if err != nil {
					return nil, nil, nil, fmt.Errorf("row %d: invalid parent_location_id %q", i+1, row[4])
				}
				loc.ParentLocationID = &parentID
			}
			if row[5] != "" {
				stateID, err := strconv.Atoi(row[5])
				if err != nil {
					return nil, nil, nil, fmt.Errorf("row %d: invalid state_id %q", i+1, row[5])
				}
				loc.StateID = &stateID
			}
			locations = append(locations, loc)
		default:
			return nil, nil, nil, fmt.Errorf("row %d: unknown kind %q", i+1, row[0])
		}
	}

	return countries, states, locations, nil
}

func createSchema(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS unaccent;

		CREATE TABLE IF NOT EXISTS countries (
			id INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			iso_code VARCHAR(2) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS states (
			id INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			country_id INTEGER NOT NULL REFERENCES countries(id)
		);

		CREATE TABLE IF NOT EXISTS locations (
			id INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			depth INTEGER NOT NULL,
			parent_location_id INTEGER,
			state_id INTEGER REFERENCES states(id)
		);

		CREATE INDEX IF NOT EXISTS locations_parent_idx ON locations (parent_location_id);
		CREATE INDEX IF NOT EXISTS locations_depth_state_idx ON locations (depth, state_id);
	`)
	return err
}

func insertAll(ctx context.Context, conn *pgx.Conn, countries []countryRecord, states []stateRecord, locations []locationRecord) error {
	batch := &pgx.Batch{}
	for _, c := range countries {
		batch.Queue(
			"INSERT INTO countries (id, name, iso_code) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
			c.ID, c.Name, c.ISOCode,
		)
	}
	for _, s := range states {
		batch.Queue(
			"INSERT INTO states (id, name, country_id) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
			s.ID, s.Name, s.CountryID,
		)
	}
	for _, l := range locations {
		batch.Queue(
			"INSERT INTO locations (id, name, depth, parent_location_id, state_id) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING",
			l.ID, l.Name, l.Depth, l.ParentLocationID, l.StateID,
		)
	}

	results := conn.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert %d: %w", i, err)
		}
	}
	return nil
}
