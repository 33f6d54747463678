// Package storage provides SQLite-based persistence for overlay blobs and
// win records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// WinEntry represents a single recorded win.
type WinEntry struct {
	ID        int64
	Scenario  string
	Value     int // Crafted value that crossed the target
	Crafts    int // Successful crafts in the session
	Duration  int // Session duration in seconds
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS wins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			value INTEGER NOT NULL,
			crafts INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_wins_scenario ON wins(scenario);
		CREATE INDEX IF NOT EXISTS idx_wins_fastest ON wins(scenario, duration_secs ASC);
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

// Load retrieves a blob by key. Implements the overlay blob contract: a
// missing key reports ok=false, not an error.
func (s *Store) Load(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot load blob %q: %w", key, err)
	}
	return value, true, nil
}

// Save writes a blob, replacing any previous value under the key.
func (s *Store) Save(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save blob %q: %w", key, err)
	}
	return nil
}

// DeleteBlob removes a blob. Used by the reset command to drop a scenario's
// overlay explicitly.
func (s *Store) DeleteBlob(key string) error {
	_, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot delete blob %q: %w", key, err)
	}
	return nil
}

// RecordWin stores a win for the given scenario.
// Returns the ID of the inserted record.
func (s *Store) RecordWin(scenario string, value, crafts int, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO wins (scenario, value, crafts, duration_secs) VALUES (?, ?, ?, ?)",
		scenario, value, crafts, int(duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record win: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopWins retrieves the fastest N wins for the given scenario.
func (s *Store) TopWins(scenario string, limit int) ([]WinEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, value, crafts, duration_secs, created_at
		 FROM wins
		 WHERE scenario = ?
		 ORDER BY duration_secs ASC, crafts ASC
		 LIMIT ?`,
		scenario, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var entries []WinEntry
	for rows.Next() {
		var e WinEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scenario, &e.Value, &e.Crafts, &e.Duration, &createdAt); err != nil {
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

// WinCount returns the number of wins recorded for the given scenario.
func (s *Store) WinCount(scenario string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM wins WHERE scenario = ?",
		scenario,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	return count, nil
}
