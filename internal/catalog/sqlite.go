package catalog

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/kartoza/kinetics-lab/internal/kinetics"
	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads a catalog from a SQLite database with the schema
//
//	CREATE TABLE reactions (key TEXT PRIMARY KEY, name TEXT, pre_exponential_factor REAL,
//	    activation_energy REAL, reaction_order INTEGER, equation TEXT, description TEXT);
//	CREATE TABLE metadata (name TEXT, value TEXT); -- optional
//
// The database is opened read-only and closed once the table is loaded.
func LoadSQLite(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	// Verify it's a catalog database
	var count int
	err = db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name='reactions'").Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect catalog database: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s has no reactions table", ErrInvalidCatalog, path)
	}

	profiles, err := readProfiles(db)
	if err != nil {
		return nil, err
	}

	ranges, defaultKey, err := readMetadata(db)
	if err != nil {
		return nil, err
	}

	c, err := New(profiles, defaultKey, ranges)
	if err != nil {
		return nil, err
	}
	c.source = path
	return c, nil
}

func readProfiles(db *sql.DB) ([]kinetics.ReactionProfile, error) {
	rows, err := db.Query(`SELECT key, name, pre_exponential_factor, activation_energy, reaction_order,
		COALESCE(equation, ''), COALESCE(description, '') FROM reactions ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reactions: %w", err)
	}
	defer rows.Close()

	var profiles []kinetics.ReactionProfile
	for rows.Next() {
		var p kinetics.ReactionProfile
		if err := rows.Scan(&p.Key, &p.Name, &p.PreExponentialFactor, &p.ActivationEnergy,
			&p.Order, &p.Equation, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// readMetadata overlays metadata rows on DefaultRanges
func readMetadata(db *sql.DB) (Ranges, string, error) {
	ranges := DefaultRanges()
	defaultKey := ""

	var count int
	err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name='metadata'").Scan(&count)
	if err != nil || count == 0 {
		return ranges, defaultKey, err
	}

	rows, err := db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return ranges, defaultKey, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	fields := map[string]*float64{
		"temperature_min":     &ranges.Temperature.Min,
		"temperature_max":     &ranges.Temperature.Max,
		"temperature_step":    &ranges.Temperature.Step,
		"temperature_default": &ranges.Temperature.Default,

		"concentration_min":     &ranges.Concentration.Min,
		"concentration_max":     &ranges.Concentration.Max,
		"concentration_step":    &ranges.Concentration.Step,
		"concentration_default": &ranges.Concentration.Default,
	}

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return ranges, defaultKey, fmt.Errorf("failed to scan metadata: %w", err)
		}

		if key == "default" {
			defaultKey = value
			continue
		}
		if dst, ok := fields[key]; ok {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return ranges, defaultKey, fmt.Errorf("%w: metadata %s=%q: %v", ErrInvalidCatalog, key, value, err)
			}
			*dst = v
		}
	}

	return ranges, defaultKey, rows.Err()
}
