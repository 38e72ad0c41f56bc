// Package output renders parsed header metadata for terminal consumption.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"vcfmeta/internal/header"
)

// absent marks a column that does not apply to a record kind.
const absent = "-"

// TabWriter writes header metadata in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Kind",
			"ID",
			"Number",
			"Type",
			"Description",
			"Extra",
		},
	}
}

// WriteHeader writes the column header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// WriteMeta writes one row per stored record: the structured tags first, each
// group in declaration order, then the generic entries.
func (tw *TabWriter) WriteMeta(meta *header.Store) error {
	for _, info := range meta.Infos() {
		extra := absent
		if rendered := infoExtra(info); rendered != "" {
			extra = rendered
		}
		err := tw.writeRow(header.TagInfo, info.ID,
			info.Number.String(), info.Type.String(), info.Description, extra)
		if err != nil {
			return err
		}
	}
	for _, filter := range meta.Filters() {
		err := tw.writeRow(header.TagFilter, filter.ID,
			absent, absent, filter.Description, absent)
		if err != nil {
			return err
		}
	}
	for _, alt := range meta.Alts() {
		err := tw.writeRow(header.TagAlt, alt.ID,
			absent, absent, alt.Description, absent)
		if err != nil {
			return err
		}
	}
	for _, format := range meta.Formats() {
		err := tw.writeRow(header.TagFormat, format.ID,
			format.Number.String(), format.Type.String(), format.Description, absent)
		if err != nil {
			return err
		}
	}
	for _, contig := range meta.Contigs() {
		extra := absent
		if contig.HasLength() {
			extra = "length=" + strconv.FormatInt(contig.Length, 10)
		}
		err := tw.writeRow(header.TagContig, contig.ID,
			absent, absent, absent, extra)
		if err != nil {
			return err
		}
	}
	for _, g := range meta.Generics() {
		if err := tw.writeRow("generic", g.Key, absent, absent, absent, g.Text()); err != nil {
			return err
		}
	}
	return nil
}

func (tw *TabWriter) writeRow(kind, id, number, typ, description, extra string) error {
	if description == "" {
		description = absent
	}
	if extra == "" {
		extra = absent
	}
	values := []string{kind, id, number, typ, description, extra}
	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

// infoExtra renders the optional Source and Version attributes.
func infoExtra(info header.Info) string {
	var parts []string
	if info.Source != "" {
		parts = append(parts, "Source="+info.Source)
	}
	if info.Version != "" {
		parts = append(parts, "Version="+info.Version)
	}
	return strings.Join(parts, ",")
}
