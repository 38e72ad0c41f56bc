// Package catalog persists parsed VCF header declarations in DuckDB so the
// controlled vocabularies of many files can be queried without re-reading
// the files themselves.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages the DuckDB connection behind the header catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the catalog database at the given path.
// Use an empty string for an in-memory catalog.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates the catalog tables if they don't exist. mod_time is
// kept as unix nanoseconds so fingerprints compare exactly.
func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS files (
			path VARCHAR PRIMARY KEY,
			size BIGINT,
			mod_time BIGINT,
			fileformat VARCHAR,
			samples VARCHAR,
			indexed_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS header_records (
			path VARCHAR,
			kind VARCHAR,
			id VARCHAR,
			number VARCHAR,
			type VARCHAR,
			description VARCHAR,
			source VARCHAR,
			version VARCHAR,
			length BIGINT,
			PRIMARY KEY (path, kind, id)
		)`,
		`CREATE TABLE IF NOT EXISTS generic_metadata (
			path VARCHAR,
			key VARCHAR,
			value VARCHAR,
			PRIMARY KEY (path, key)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
