package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// FileRow describes one indexed file.
type FileRow struct {
	Path       string
	Size       int64
	ModTime    time.Time
	FileFormat string
	Samples    []string
	IndexedAt  time.Time
}

// GenericRow is one stored generic metadata entry.
type GenericRow struct {
	Path  string
	Key   string
	Value string
}

const recordColumns = "path, kind, id, number, type, description, source, version, length"

// LookupRecord returns every declaration of the given kind and id, one row
// per file that declares it, ordered by path.
func (s *Store) LookupRecord(kind, id string) ([]RecordRow, error) {
	rows, err := s.db.Query(
		"SELECT "+recordColumns+" FROM header_records WHERE kind=? AND id=? ORDER BY path",
		kind, id)
	if err != nil {
		return nil, fmt.Errorf("query header records: %w", err)
	}
	defer rows.Close()

	return scanRecordRows(rows)
}

// FileRecords returns every declaration recorded for one file.
func (s *Store) FileRecords(path string) ([]RecordRow, error) {
	rows, err := s.db.Query(
		"SELECT "+recordColumns+" FROM header_records WHERE path=? ORDER BY kind, id",
		path)
	if err != nil {
		return nil, fmt.Errorf("query file records: %w", err)
	}
	defer rows.Close()

	return scanRecordRows(rows)
}

func scanRecordRows(rows *sql.Rows) ([]RecordRow, error) {
	var out []RecordRow
	for rows.Next() {
		var r RecordRow
		if err := rows.Scan(
			&r.Path, &r.Kind, &r.ID, &r.Number, &r.Type,
			&r.Description, &r.Source, &r.Version, &r.Length,
		); err != nil {
			return nil, fmt.Errorf("scan header record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate header records: %w", err)
	}
	return out, nil
}

// LookupGeneric returns every file's value for one generic metadata key,
// ordered by path.
func (s *Store) LookupGeneric(key string) ([]GenericRow, error) {
	rows, err := s.db.Query(
		"SELECT path, key, value FROM generic_metadata WHERE key=? ORDER BY path", key)
	if err != nil {
		return nil, fmt.Errorf("query generic metadata: %w", err)
	}
	defer rows.Close()

	var out []GenericRow
	for rows.Next() {
		var g GenericRow
		if err := rows.Scan(&g.Path, &g.Key, &g.Value); err != nil {
			return nil, fmt.Errorf("scan generic metadata: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generic metadata: %w", err)
	}
	return out, nil
}

// Files lists every indexed file, ordered by path.
func (s *Store) Files() ([]FileRow, error) {
	rows, err := s.db.Query(
		"SELECT path, size, mod_time, fileformat, samples, indexed_at FROM files ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	var out []FileRow
	for rows.Next() {
		var f FileRow
		var modNanos int64
		var samples string
		if err := rows.Scan(&f.Path, &f.Size, &modNanos, &f.FileFormat, &samples, &f.IndexedAt); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		f.ModTime = time.Unix(0, modNanos)
		if samples != "" {
			f.Samples = strings.Split(samples, ",")
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return out, nil
}
