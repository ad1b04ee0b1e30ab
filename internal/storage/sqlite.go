// Package storage provides SQLite-based persistence for the puzzle library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/avolkov/nurikabe/internal/puzzle"
)

// ErrNotFound is returned when no stored puzzle matches the request.
var ErrNotFound = errors.New("storage: puzzle not found")

// Store manages the SQLite database holding saved puzzles.
type Store struct {
	db *sql.DB
}

// Entry describes one stored puzzle without its full definition.
type Entry struct {
	ID        int64
	Name      string
	Rows      int
	Cols      int
	Clues     int
	Source    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS puzzles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			clues INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			def TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_puzzles_dims ON puzzles(rows, cols);
		CREATE INDEX IF NOT EXISTS idx_puzzles_name ON puzzles(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores a puzzle definition and returns its record ID. The definition
// is validated before it is written.
func (s *Store) Save(def puzzle.Def, source string) (int64, error) {
	if err := def.Validate(); err != nil {
		return 0, err
	}
	raw, err := yaml.Marshal(def)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode puzzle: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO puzzles (name, rows, cols, clues, source, def) VALUES (?, ?, ?, ?, ?, ?)",
		def.Name, def.Rows, def.Cols, len(def.Clues), source, string(raw),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Get loads one puzzle by its record ID.
func (s *Store) Get(id int64) (puzzle.Def, error) {
	var raw string
	err := s.db.QueryRow("SELECT def FROM puzzles WHERE id = ?", id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return puzzle.Def{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return puzzle.Def{}, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	return puzzle.Parse([]byte(raw))
}

// Random picks a random stored puzzle with the given dimensions. Zero rows
// or cols match any size.
func (s *Store) Random(rows, cols int) (puzzle.Def, error) {
	query := "SELECT def FROM puzzles"
	var args []any
	if rows > 0 && cols > 0 {
		query += " WHERE rows = ? AND cols = ?"
		args = append(args, rows, cols)
	}
	query += " ORDER BY RANDOM() LIMIT 1"

	var raw string
	err := s.db.QueryRow(query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return puzzle.Def{}, fmt.Errorf("%w: no matching puzzles stored", ErrNotFound)
	}
	if err != nil {
		return puzzle.Def{}, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	return puzzle.Parse([]byte(raw))
}

// List returns all stored puzzles, newest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, rows, cols, clues, source, created_at
		 FROM puzzles
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Rows, &e.Cols, &e.Clues, &e.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Delete removes one stored puzzle.
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM puzzles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete puzzle: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}
