// Package dex is the local game-data store: species base stats and
// typing, move metadata, level-up learnsets, and nature modifiers,
// kept in a sqlite database that is created and seeded on first open.
package dex

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Dex wraps the game-data database.
type Dex struct {
	db *sql.DB
}

// BaseStats holds a species' six base stat values.
type BaseStats struct {
	HP    int
	Atk   int
	Def   int
	SpAtk int
	SpDef int
	Speed int
}

// SpeciesInfo holds species metadata. Type2 is empty for mono-typed
// species.
type SpeciesInfo struct {
	Name  string
	Type1 string
	Type2 string
	Base  BaseStats
}

// MoveData holds move metadata. Category is "physical", "special", or
// "status".
type MoveData struct {
	Name     string
	Type     string
	Category string
	Power    int
	Priority int
}

// NatureMod names the boosted and hindered stat for a nature; both are
// empty for neutral natures. Stat names are "atk", "def", "spatk",
// "spdef", "speed".
type NatureMod struct {
	Name string
	Up   string
	Down string
}

// DefaultPath returns the per-user location of the dex database.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "Boxscout", "dex.db")
}

// Open opens (creating and seeding if needed) the dex database at path.
func Open(path string) (*Dex, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create dex directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dex database: %w", err)
	}

	d := &Dex{db: db}
	if err := d.init(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// init creates the schema and seeds data on first run.
func (d *Dex) init() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS species (
			name TEXT PRIMARY KEY,
			type1 TEXT NOT NULL,
			type2 TEXT NOT NULL DEFAULT '',
			hp INTEGER NOT NULL,
			atk INTEGER NOT NULL,
			def INTEGER NOT NULL,
			spatk INTEGER NOT NULL,
			spdef INTEGER NOT NULL,
			speed INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS moves (
			name TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			power INTEGER NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS learnsets (
			species TEXT NOT NULL,
			move TEXT NOT NULL,
			level INTEGER NOT NULL,
			PRIMARY KEY (species, move)
		);
		CREATE TABLE IF NOT EXISTS natures (
			name TEXT PRIMARY KEY,
			up TEXT NOT NULL DEFAULT '',
			down TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create dex schema: %w", err)
	}

	var count int
	d.db.QueryRow("SELECT COUNT(*) FROM species").Scan(&count)
	if count > 0 {
		return nil // Already populated
	}
	fmt.Println("[Dex] Seeding game data...")
	return d.populate()
}

// Species returns species metadata by name.
func (d *Dex) Species(name string) (*SpeciesInfo, error) {
	var info SpeciesInfo
	err := d.db.QueryRow(`
		SELECT name, type1, type2, hp, atk, def, spatk, spdef, speed
		FROM species WHERE name = ? COLLATE NOCASE
	`, name).Scan(&info.Name, &info.Type1, &info.Type2,
		&info.Base.HP, &info.Base.Atk, &info.Base.Def,
		&info.Base.SpAtk, &info.Base.SpDef, &info.Base.Speed)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unknown species %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("species lookup failed: %w", err)
	}
	return &info, nil
}

// Move returns move metadata by name.
func (d *Dex) Move(name string) (*MoveData, error) {
	var m MoveData
	err := d.db.QueryRow(`
		SELECT name, type, category, power, priority
		FROM moves WHERE name = ? COLLATE NOCASE
	`, name).Scan(&m.Name, &m.Type, &m.Category, &m.Power, &m.Priority)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unknown move %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("move lookup failed: %w", err)
	}
	return &m, nil
}

// Nature returns the stat modifiers for a nature.
func (d *Dex) Nature(name string) (*NatureMod, error) {
	var n NatureMod
	err := d.db.QueryRow(`
		SELECT name, up, down FROM natures WHERE name = ? COLLATE NOCASE
	`, name).Scan(&n.Name, &n.Up, &n.Down)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unknown nature %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("nature lookup failed: %w", err)
	}
	return &n, nil
}

// LearnableMoves returns the damaging moves a species can know at or
// below the given level, ordered by learn level.
func (d *Dex) LearnableMoves(species string, levelCap int) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT l.move FROM learnsets l
		JOIN moves m ON m.name = l.move
		WHERE l.species = ? COLLATE NOCASE AND l.level <= ? AND m.category != 'status'
		ORDER BY l.level, l.move
	`, species, levelCap)
	if err != nil {
		return nil, fmt.Errorf("learnset lookup failed: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var move string
		if err := rows.Scan(&move); err != nil {
			continue
		}
		moves = append(moves, move)
	}
	return moves, rows.Err()
}

// Close closes the database.
func (d *Dex) Close() error {
	return d.db.Close()
}
