package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StorageKey is the fixed key the whole application state lives under.
const StorageKey = "crewdeck-data"

const blobSchema = `
CREATE TABLE IF NOT EXISTS blobs (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteBackend stores the state blob in a single-row key-value table inside
// a local SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// blob table exists.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode and a busy timeout so an accidental second process
	// doesn't corrupt or wedge the store.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			closeQuietly(db)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	// Single writer connection, same as any small local SQLite store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(blobSchema); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to create blob table: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func closeQuietly(db *sql.DB) {
	_ = db.Close()
}

// Load reads the saved blob. When no blob exists yet it returns the default
// empty state; a blob that fails to decode is reported as an error.
func (b *SQLiteBackend) Load() (State, error) {
	var raw string
	err := b.db.QueryRow("SELECT value FROM blobs WHERE key = ?", StorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultState(), nil
	}
	if err != nil {
		return DefaultState(), fmt.Errorf("read blob: %w", err)
	}
	return Decode([]byte(raw))
}

// Save overwrites the stored blob with the full serialized state.
func (b *SQLiteBackend) Save(s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = b.db.Exec(
		"INSERT INTO blobs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		StorageKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// Clear removes the stored blob entirely; the next Load returns the default state.
func (b *SQLiteBackend) Clear() error {
	if _, err := b.db.Exec("DELETE FROM blobs WHERE key = ?", StorageKey); err != nil {
		return fmt.Errorf("clear blob: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Compile-time verification that *SQLiteBackend implements Backend
var _ Backend = (*SQLiteBackend)(nil)
