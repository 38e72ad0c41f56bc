package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"
)

// FileFingerprint holds stat-based identity for an indexed file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// NeedsIndex reports whether the file is missing from the catalog or its
// recorded size/modtime differ from the fingerprint.
func (s *Store) NeedsIndex(fp FileFingerprint) (bool, error) {
	var size, modNanos int64
	err := s.db.QueryRow("SELECT size, mod_time FROM files WHERE path=?", fp.Path).
		Scan(&size, &modNanos)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("query file fingerprint: %w", err)
	}
	return size != fp.Size || modNanos != fp.ModTime.UnixNano(), nil
}
