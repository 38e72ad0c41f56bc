package catalog

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"vcfmeta/internal/header"
)

// FileScan is the parsed header of one file, ready to be written.
type FileScan struct {
	Fingerprint FileFingerprint
	Meta        *header.Store
	Samples     []string
}

// RecordRow is one flattened header declaration as stored in the catalog.
// Number and Type hold the wire tokens; Length is -1 except for contig rows
// that declare one.
type RecordRow struct {
	Path        string
	Kind        string
	ID          string
	Number      string
	Type        string
	Description string
	Source      string
	Version     string
	Length      int64
}

// WriteFileScan replaces everything recorded for the scanned path and writes
// the fresh rows. Header records go through the Appender in one batch.
func (s *Store) WriteFileScan(scan FileScan) error {
	path := scan.Fingerprint.Path
	if err := s.DeleteFile(path); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT INTO files (path, size, mod_time, fileformat, samples, indexed_at) VALUES (?, ?, ?, ?, ?, ?)",
		path, scan.Fingerprint.Size, scan.Fingerprint.ModTime.UnixNano(),
		scan.Meta.FileFormat(), strings.Join(scan.Samples, ","), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert file row: %w", err)
	}

	if rows := flattenRecords(path, scan.Meta); len(rows) > 0 {
		if err := s.appendRecords(rows); err != nil {
			return err
		}
	}

	for _, g := range scan.Meta.Generics() {
		if _, err := s.db.Exec(
			"INSERT INTO generic_metadata (path, key, value) VALUES (?, ?, ?)",
			path, g.Key, g.Text(),
		); err != nil {
			return fmt.Errorf("insert generic metadata: %w", err)
		}
	}

	return nil
}

// appendRecords batch-inserts header records using the Appender API.
func (s *Store) appendRecords(rows []RecordRow) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "header_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range rows {
		if err := appender.AppendRow(
			r.Path, r.Kind, r.ID, r.Number, r.Type,
			r.Description, r.Source, r.Version, r.Length,
		); err != nil {
			return fmt.Errorf("append header record: %w", err)
		}
	}
	return appender.Flush()
}

// DeleteFile removes a file and all its rows from the catalog.
func (s *Store) DeleteFile(path string) error {
	for _, stmt := range []string{
		"DELETE FROM header_records WHERE path=?",
		"DELETE FROM generic_metadata WHERE path=?",
		"DELETE FROM files WHERE path=?",
	} {
		if _, err := s.db.Exec(stmt, path); err != nil {
			return fmt.Errorf("delete catalog rows: %w", err)
		}
	}
	return nil
}

// flattenRecords turns the per-kind collections into catalog rows, keeping
// each kind's file order.
func flattenRecords(path string, meta *header.Store) []RecordRow {
	rows := make([]RecordRow, 0, meta.Len())
	for _, info := range meta.Infos() {
		rows = append(rows, RecordRow{
			Path: path, Kind: header.TagInfo, ID: info.ID,
			Number: info.Number.String(), Type: info.Type.String(),
			Description: info.Description, Source: info.Source, Version: info.Version,
			Length: -1,
		})
	}
	for _, filter := range meta.Filters() {
		rows = append(rows, RecordRow{
			Path: path, Kind: header.TagFilter, ID: filter.ID,
			Description: filter.Description, Length: -1,
		})
	}
	for _, alt := range meta.Alts() {
		rows = append(rows, RecordRow{
			Path: path, Kind: header.TagAlt, ID: alt.ID,
			Description: alt.Description, Length: -1,
		})
	}
	for _, format := range meta.Formats() {
		rows = append(rows, RecordRow{
			Path: path, Kind: header.TagFormat, ID: format.ID,
			Number: format.Number.String(), Type: format.Type.String(),
			Description: format.Description, Length: -1,
		})
	}
	for _, contig := range meta.Contigs() {
		rows = append(rows, RecordRow{
			Path: path, Kind: header.TagContig, ID: contig.ID,
			Length: contig.Length,
		})
	}
	return rows
}
